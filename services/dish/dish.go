package dish

import (
	"dishrank-restaurant-api/enums"
	"dishrank-restaurant-api/models"
	"dishrank-restaurant-api/repositories"
	"dishrank-restaurant-api/services"
	"dishrank-restaurant-api/structs"
)

type DishService struct {
	Repository repositories.DishRepository
}

func NewDishService(repository repositories.DishRepository) *DishService {
	return &DishService{Repository: repository}
}

func (d *DishService) Create(param structs.DishParam) (*models.Dish, error) {
	if err := d.check(param); err != nil {
		return nil, err
	}
	var dish models.Dish
	assign(&dish, param)
	if err := d.Repository.Create(&dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (d *DishService) FindAll() ([]models.Dish, error) {
	return d.Repository.FindAll()
}

func (d *DishService) FindOne(id string) (*models.Dish, error) {
	dish, err := d.Repository.FindByID(id)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, services.NotFound("Dish not found")
	}
	return dish, nil
}

func (d *DishService) Update(id string, param structs.DishParam) (*models.Dish, error) {
	if err := d.check(param); err != nil {
		return nil, err
	}
	dish, err := d.FindOne(id)
	if err != nil {
		return nil, err
	}
	assign(dish, param)
	if err := d.Repository.Save(dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (d *DishService) Remove(id string) error {
	dish, err := d.FindOne(id)
	if err != nil {
		return err
	}
	return d.Repository.Delete(dish)
}

// check 分類必須在列舉內，價格不可為負
func (d *DishService) check(param structs.DishParam) error {
	if !enums.IsDishCategory(param.Category) {
		return services.BadRequest("Invalid category")
	}
	if param.Price.IsNegative() {
		return services.BadRequest("Invalid price")
	}
	return nil
}

func assign(dish *models.Dish, param structs.DishParam) {
	dish.Name = param.Name
	dish.Description = param.Description
	dish.Price = param.Price
	dish.Category = param.Category
}
