package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

type Restaurant struct {
	ID        string     `gorm:"column:id;primary_key;type:varchar(36)" json:"id"`
	Name      string     `gorm:"column:name" json:"name"`
	Address   string     `gorm:"column:address" json:"address"`
	Type      string     `gorm:"column:type" json:"type"`
	Website   string     `gorm:"column:website" json:"website"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at" json:"updated_at"`
	Dishes    []Dish     `gorm:"many2many:restaurant_dishes" json:"dishes"`
}

// TableName sets the insert table name for this struct type
func (r *Restaurant) TableName() string {
	return "restaurants"
}

// BeforeCreate 新增前產生 uuid
func (r *Restaurant) BeforeCreate(scope *gorm.Scope) error {
	if r.ID != "" {
		return nil
	}
	return scope.SetColumn("ID", uuid.New().String())
}
