package restaurantDish

import (
	"dishrank-restaurant-api/enums"
	"dishrank-restaurant-api/models"
	"dishrank-restaurant-api/repositories"
	"dishrank-restaurant-api/services"
	"dishrank-restaurant-api/services/trackLog"
	"dishrank-restaurant-api/structs"
	"fmt"
	"time"
)

// EventPublisher 關聯異動後的通知對象，例如 rabbitmq
type EventPublisher interface {
	Publish(event structs.AssociationEvent) error
}

type RestaurantDishService struct {
	Restaurants repositories.RestaurantRepository
	Dishes      repositories.DishRepository
	Publisher   EventPublisher
}

func NewRestaurantDishService(restaurants repositories.RestaurantRepository, dishes repositories.DishRepository, publisher EventPublisher) *RestaurantDishService {
	return &RestaurantDishService{
		Restaurants: restaurants,
		Dishes:      dishes,
		Publisher:   publisher,
	}
}

func (s *RestaurantDishService) AddDishToRestaurant(restaurantID, dishID string) (*models.Restaurant, error) {
	if _, err := s.findRestaurant(restaurantID); err != nil {
		return nil, err
	}
	dish, err := s.Dishes.FindByID(dishID)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, services.NotFound("Dish not found")
	}

	if err := s.Restaurants.AddDish(restaurantID, dishID); err != nil {
		return nil, err
	}
	s.publish(enums.DishAddedEvent, restaurantID, []string{dishID})
	return s.findRestaurant(restaurantID)
}

func (s *RestaurantDishService) FindDishesFromRestaurant(restaurantID string) ([]models.Dish, error) {
	restaurant, err := s.findRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	return restaurant.Dishes, nil
}

// FindDishFromRestaurant 餐點存在但沒有和餐廳關聯時也是 NotFound
func (s *RestaurantDishService) FindDishFromRestaurant(restaurantID, dishID string) (*models.Dish, error) {
	restaurant, err := s.findRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	for i := range restaurant.Dishes {
		if restaurant.Dishes[i].ID == dishID {
			return &restaurant.Dishes[i], nil
		}
	}
	return nil, services.NotFound("Dish not associated with restaurant")
}

// UpdateDishesFromRestaurant 以 dishIDs 整批取代，空陣列代表清空
func (s *RestaurantDishService) UpdateDishesFromRestaurant(restaurantID string, dishIDs []string) (*models.Restaurant, error) {
	if _, err := s.findRestaurant(restaurantID); err != nil {
		return nil, err
	}

	ids := unique(dishIDs)
	dishes, err := s.Dishes.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(dishes) != len(ids) {
		return nil, services.NotFound("One or more dishes not found")
	}

	if err := s.Restaurants.ReplaceDishes(restaurantID, ids); err != nil {
		return nil, err
	}
	s.publish(enums.DishesUpdatedEvent, restaurantID, ids)
	return s.findRestaurant(restaurantID)
}

func (s *RestaurantDishService) DeleteDishFromRestaurant(restaurantID, dishID string) error {
	if _, err := s.FindDishFromRestaurant(restaurantID, dishID); err != nil {
		return err
	}

	removed, err := s.Restaurants.RemoveDish(restaurantID, dishID)
	if err != nil {
		return err
	}
	// 查詢到刪除之間被其他請求移除
	if !removed {
		return services.NotFound("Dish not associated with restaurant")
	}
	s.publish(enums.DishRemovedEvent, restaurantID, []string{dishID})
	return nil
}

func (s *RestaurantDishService) findRestaurant(restaurantID string) (*models.Restaurant, error) {
	restaurant, err := s.Restaurants.FindByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, services.NotFound("Restaurant not found")
	}
	return restaurant, nil
}

// publish 資料已寫入，通知失敗只記 log
func (s *RestaurantDishService) publish(eventType, restaurantID string, dishIDs []string) {
	if s.Publisher == nil {
		return
	}
	event := structs.AssociationEvent{
		Type:         eventType,
		RestaurantID: restaurantID,
		DishIDs:      dishIDs,
		OccurredAt:   time.Now(),
	}
	if err := s.Publisher.Publish(event); err != nil {
		trackLog.Error(fmt.Sprintf("[restaurantDish] publish %s for restaurant %s failed: %s", eventType, restaurantID, err.Error()), true)
	}
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
