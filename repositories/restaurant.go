package repositories

import (
	"dishrank-restaurant-api/models"
	"fmt"

	"github.com/jinzhu/gorm"
	gormbulk "github.com/t-tiger/gorm-bulk-insert/v2"
)

const bulkInsertChunkSize = 3000

// RestaurantRepository 存取 restaurants 以及 restaurant_dishes 關聯表
type RestaurantRepository interface {
	Create(restaurant *models.Restaurant) error
	FindAll() ([]models.Restaurant, error)
	// FindByID 查無資料時回傳 nil, nil
	FindByID(id string) (*models.Restaurant, error)
	Save(restaurant *models.Restaurant) error
	// Delete 同時刪除該餐廳的所有關聯
	Delete(restaurant *models.Restaurant) error
	AddDish(restaurantID, dishID string) error
	// RemoveDish 回傳是否真的有刪到關聯
	RemoveDish(restaurantID, dishID string) (bool, error)
	// ReplaceDishes 以 dishIDs 整批取代餐廳現有的餐點
	ReplaceDishes(restaurantID string, dishIDs []string) error
}

type RestaurantRepoImpl struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &RestaurantRepoImpl{DB: db}
}

func (r *RestaurantRepoImpl) Create(restaurant *models.Restaurant) error {
	if err := r.DB.Set("gorm:save_associations", false).Create(restaurant).Error; err != nil {
		return fmt.Errorf("create restaurant: %w", err)
	}
	if restaurant.Dishes == nil {
		restaurant.Dishes = []models.Dish{}
	}
	return nil
}

func (r *RestaurantRepoImpl) FindAll() ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	if err := r.DB.Preload("Dishes").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("find restaurants: %w", err)
	}
	for i := range restaurants {
		if restaurants[i].Dishes == nil {
			restaurants[i].Dishes = []models.Dish{}
		}
	}
	return restaurants, nil
}

func (r *RestaurantRepoImpl) FindByID(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.DB.Preload("Dishes").Where("id = ?", id).First(&restaurant).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find restaurant %s: %w", id, err)
	}
	if restaurant.Dishes == nil {
		restaurant.Dishes = []models.Dish{}
	}
	return &restaurant, nil
}

func (r *RestaurantRepoImpl) Save(restaurant *models.Restaurant) error {
	if err := r.DB.Set("gorm:save_associations", false).Save(restaurant).Error; err != nil {
		return fmt.Errorf("save restaurant %s: %w", restaurant.ID, err)
	}
	return nil
}

func (r *RestaurantRepoImpl) Delete(restaurant *models.Restaurant) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.RestaurantDish{}).Error; err != nil {
			return err
		}
		return tx.Delete(restaurant).Error
	})
	if err != nil {
		return fmt.Errorf("delete restaurant %s: %w", restaurant.ID, err)
	}
	return nil
}

func (r *RestaurantRepoImpl) AddDish(restaurantID, dishID string) error {
	row := models.RestaurantDish{RestaurantID: restaurantID, DishID: dishID}
	if err := r.DB.Where(row).FirstOrCreate(&row).Error; err != nil {
		return fmt.Errorf("add dish %s to restaurant %s: %w", dishID, restaurantID, err)
	}
	return nil
}

func (r *RestaurantRepoImpl) RemoveDish(restaurantID, dishID string) (bool, error) {
	result := r.DB.Where("restaurant_id = ? AND dish_id = ?", restaurantID, dishID).Delete(&models.RestaurantDish{})
	if result.Error != nil {
		return false, fmt.Errorf("remove dish %s from restaurant %s: %w", dishID, restaurantID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *RestaurantRepoImpl) ReplaceDishes(restaurantID string, dishIDs []string) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", restaurantID).Delete(&models.RestaurantDish{}).Error; err != nil {
			return err
		}
		if len(dishIDs) == 0 {
			return nil
		}

		var insertRecords []interface{}
		for _, dishID := range dishIDs {
			insertRecords = append(insertRecords, models.RestaurantDish{RestaurantID: restaurantID, DishID: dishID})
		}
		// 批次 insert
		return gormbulk.BulkInsert(tx, insertRecords, bulkInsertChunkSize)
	})
	if err != nil {
		return fmt.Errorf("replace dishes of restaurant %s: %w", restaurantID, err)
	}
	return nil
}
