package structs

import "github.com/shopspring/decimal"

// RestaurantParam POST / PUT /restaurants 的 body
type RestaurantParam struct {
	ID      string `json:"id" form:"id"`
	Name    string `json:"name" form:"name" binding:"required"`
	Address string `json:"address" form:"address" binding:"required"`
	Type    string `json:"type" form:"type" binding:"required"`
	Website string `json:"website" form:"website" binding:"required,url|fqdn"`
}

// DishParam POST / PUT /dishes 的 body，category 與 price 由 service 檢查
type DishParam struct {
	ID          string          `json:"id" form:"id"`
	Name        string          `json:"name" form:"name"`
	Description string          `json:"description" form:"description"`
	Price       decimal.Decimal `json:"price" form:"price"`
	Category    string          `json:"category" form:"category"`
}
