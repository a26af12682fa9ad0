package restaurant

import (
	"dishrank-restaurant-api/enums"
	"dishrank-restaurant-api/models"
	"dishrank-restaurant-api/repositories"
	"dishrank-restaurant-api/services"
	"dishrank-restaurant-api/structs"
)

type RestaurantService struct {
	Repository repositories.RestaurantRepository
}

func NewRestaurantService(repository repositories.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repository: repository}
}

func (r *RestaurantService) Create(param structs.RestaurantParam) (*models.Restaurant, error) {
	if err := r.checkType(param.Type); err != nil {
		return nil, err
	}
	var restaurant models.Restaurant
	assign(&restaurant, param)
	if err := r.Repository.Create(&restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantService) FindAll() ([]models.Restaurant, error) {
	return r.Repository.FindAll()
}

func (r *RestaurantService) FindOne(id string) (*models.Restaurant, error) {
	restaurant, err := r.Repository.FindByID(id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, services.NotFound("Restaurant not found")
	}
	return restaurant, nil
}

// Update 先檢查類型再查資料，整筆欄位覆寫
func (r *RestaurantService) Update(id string, param structs.RestaurantParam) (*models.Restaurant, error) {
	if err := r.checkType(param.Type); err != nil {
		return nil, err
	}
	restaurant, err := r.FindOne(id)
	if err != nil {
		return nil, err
	}
	assign(restaurant, param)
	if err := r.Repository.Save(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (r *RestaurantService) Remove(id string) error {
	restaurant, err := r.FindOne(id)
	if err != nil {
		return err
	}
	return r.Repository.Delete(restaurant)
}

func (r *RestaurantService) checkType(restaurantType string) error {
	if !enums.IsRestaurantType(restaurantType) {
		return services.BadRequest("Invalid type")
	}
	return nil
}

func assign(restaurant *models.Restaurant, param structs.RestaurantParam) {
	restaurant.Name = param.Name
	restaurant.Address = param.Address
	restaurant.Type = param.Type
	restaurant.Website = param.Website
}
