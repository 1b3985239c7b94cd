package models

import "time"

// Product carries two independent price/inventory pairs: the retail
// tier sells by the carton, the wholesale tier by the box. Which pair
// a viewer sees is decided by pricing.Resolve, never here.
type Product struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	Description       string    `json:"description"`
	Category          string    `gorm:"index" json:"category"`
	EggColor          string    `gorm:"index" json:"eggColor"`
	EggCount          int       `json:"eggCount"`
	ImageURL          string    `json:"imageUrl"`
	B2CPrice          float64   `gorm:"not null" json:"b2cPrice"`
	B2BPrice          float64   `gorm:"not null" json:"b2bPrice"`
	InventoryByCarton int       `json:"inventoryByCarton"`
	InventoryByBox    int       `json:"inventoryByBox"`
	IsAvailable       bool      `gorm:"default:true" json:"isAvailable"`
	IsActive          bool      `gorm:"default:true" json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
