package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type Dish struct {
	ID          string          `gorm:"column:id;primary_key;type:varchar(36)" json:"id"`
	Name        string          `gorm:"column:name" json:"name"`
	Description string          `gorm:"column:description" json:"description"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2)" json:"price"`
	Category    string          `gorm:"column:category" json:"category"`
	CreatedAt   *time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time      `gorm:"column:updated_at" json:"updated_at"`
	Restaurants []Restaurant    `gorm:"many2many:restaurant_dishes" json:"restaurants,omitempty"`
}

// TableName sets the insert table name for this struct type
func (d *Dish) TableName() string {
	return "dishes"
}

// BeforeCreate 新增前產生 uuid
func (d *Dish) BeforeCreate(scope *gorm.Scope) error {
	if d.ID != "" {
		return nil
	}
	return scope.SetColumn("ID", uuid.New().String())
}
