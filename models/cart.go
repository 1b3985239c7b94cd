package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string     `gorm:"type:uuid;uniqueIndex;not null" json:"userId"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem snapshots the product name, image and resolved unit price
// at the moment the item is added, so later price edits do not move
// an already-built cart.
type CartItem struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID          uint      `gorm:"index;not null" json:"cartId"`
	ProductID       uint      `gorm:"not null" json:"productId"`
	ProductName     string    `json:"productName"`
	ProductImageURL string    `json:"productImageUrl"`
	UnitPrice       float64   `json:"unitPrice"`
	PricingType     string    `json:"pricingType"`
	Quantity        int       `json:"quantity"`
	AddedAt         time.Time `json:"addedAt"`
}
