package testutil

import (
	"dishrank-restaurant-api/database"
	"dishrank-restaurant-api/enums"
	"dishrank-restaurant-api/models"
	"dishrank-restaurant-api/structs"
	"fmt"
	"testing"

	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

// NewTestDB 建立已 migrate 的 sqlite 記憶體資料庫，測試結束自動關閉
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Open(structs.Database{Client: "sqlite3", Db: ":memory:"})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// SeedDishes 直接寫入 n 筆餐點，不經過 service 檢查
func SeedDishes(t testing.TB, db *gorm.DB, n int) []models.Dish {
	t.Helper()
	var dishes []models.Dish
	for i := 0; i < n; i++ {
		dish := models.Dish{
			Name:        fmt.Sprintf("Plato %d", i+1),
			Description: "Bandeja paisa",
			Price:       decimal.NewFromInt(int64(10 + i)),
			Category:    enums.DishBebida,
		}
		if err := db.Create(&dish).Error; err != nil {
			t.Fatalf("seed dish: %v", err)
		}
		dishes = append(dishes, dish)
	}
	return dishes
}

// SeedRestaurant 寫入一間餐廳並關聯 dishes
func SeedRestaurant(t testing.TB, db *gorm.DB, dishes ...models.Dish) models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		Name:    "El Corral",
		Address: "Carrera 7 # 72-41",
		Type:    enums.RestaurantColombiana,
		Website: "test.com",
	}
	if err := db.Set("gorm:save_associations", false).Create(&restaurant).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	for _, dish := range dishes {
		row := models.RestaurantDish{RestaurantID: restaurant.ID, DishID: dish.ID}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed restaurant dish: %v", err)
		}
	}
	return restaurant
}

func DishIDs(dishes []models.Dish) []string {
	ids := []string{}
	for _, dish := range dishes {
		ids = append(ids, dish.ID)
	}
	return ids
}
