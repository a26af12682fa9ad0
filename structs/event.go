package structs

import "time"

// AssociationEvent 餐廳餐點關聯異動後送到 queue 的訊息
type AssociationEvent struct {
	Type         string    `json:"type"`
	RestaurantID string    `json:"restaurant_id"`
	DishIDs      []string  `json:"dish_ids"`
	OccurredAt   time.Time `json:"occurred_at"`
}
