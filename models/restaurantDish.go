package models

// RestaurantDish 餐廳與餐點的多對多關聯，每組 (restaurant_id, dish_id) 只會有一筆
type RestaurantDish struct {
	RestaurantID string `gorm:"column:restaurant_id;primary_key" json:"restaurant_id"`
	DishID       string `gorm:"column:dish_id;primary_key" json:"dish_id"`
}

// TableName sets the insert table name for this struct type
func (r *RestaurantDish) TableName() string {
	return "restaurant_dishes"
}
