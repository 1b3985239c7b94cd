package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order references its originating cart and delivery address with
// SET NULL so history survives cart clearing or address deletion.
type Order struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string      `gorm:"type:uuid;index;not null" json:"userId"`
	CartID      *uint       `gorm:"constraint:OnDelete:SET NULL" json:"cartId,omitempty"`
	AddressID   *uint       `gorm:"constraint:OnDelete:SET NULL" json:"addressId,omitempty"`
	OrderNumber string      `gorm:"uniqueIndex;not null" json:"orderNumber"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Subtotal    float64     `json:"subtotal"`
	Tax         float64     `json:"tax"`
	Shipping    float64     `json:"shipping"`
	Total       float64     `json:"total"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// OrderItem keeps the unit price paid at order time, decoupled from
// future product price changes.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint    `gorm:"index;not null" json:"orderId"`
	ProductID   uint    `gorm:"not null" json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}
