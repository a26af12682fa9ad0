package repositories

import (
	"dishrank-restaurant-api/models"
	"fmt"

	"github.com/jinzhu/gorm"
)

// DishRepository 存取 dishes
type DishRepository interface {
	Create(dish *models.Dish) error
	FindAll() ([]models.Dish, error)
	// FindByID 查無資料時回傳 nil, nil
	FindByID(id string) (*models.Dish, error)
	// FindByIDs 只回傳存在的餐點，不存在的 id 直接略過
	FindByIDs(ids []string) ([]models.Dish, error)
	Save(dish *models.Dish) error
	// Delete 同時刪除該餐點與所有餐廳的關聯
	Delete(dish *models.Dish) error
}

type DishRepoImpl struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) DishRepository {
	return &DishRepoImpl{DB: db}
}

func (r *DishRepoImpl) Create(dish *models.Dish) error {
	if err := r.DB.Set("gorm:save_associations", false).Create(dish).Error; err != nil {
		return fmt.Errorf("create dish: %w", err)
	}
	return nil
}

func (r *DishRepoImpl) FindAll() ([]models.Dish, error) {
	dishes := []models.Dish{}
	if err := r.DB.Preload("Restaurants").Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("find dishes: %w", err)
	}
	return dishes, nil
}

func (r *DishRepoImpl) FindByID(id string) (*models.Dish, error) {
	var dish models.Dish
	if err := r.DB.Preload("Restaurants").Where("id = ?", id).First(&dish).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find dish %s: %w", id, err)
	}
	return &dish, nil
}

func (r *DishRepoImpl) FindByIDs(ids []string) ([]models.Dish, error) {
	dishes := []models.Dish{}
	if len(ids) == 0 {
		return dishes, nil
	}
	if err := r.DB.Where("id IN (?)", ids).Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("find dishes by ids: %w", err)
	}
	return dishes, nil
}

func (r *DishRepoImpl) Save(dish *models.Dish) error {
	if err := r.DB.Set("gorm:save_associations", false).Save(dish).Error; err != nil {
		return fmt.Errorf("save dish %s: %w", dish.ID, err)
	}
	return nil
}

func (r *DishRepoImpl) Delete(dish *models.Dish) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dish_id = ?", dish.ID).Delete(&models.RestaurantDish{}).Error; err != nil {
			return err
		}
		return tx.Delete(dish).Error
	})
	if err != nil {
		return fmt.Errorf("delete dish %s: %w", dish.ID, err)
	}
	return nil
}
