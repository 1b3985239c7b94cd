package models

import "time"

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment is schema only for now; no controller writes it until a
// payment provider is wired in.
type Payment struct {
	ID               uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID          uint          `gorm:"uniqueIndex;not null" json:"orderId"`
	PaymentStatus    PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"paymentStatus"`
	PaymentProvider  string        `json:"paymentProvider"`
	ProviderChargeID string        `json:"providerChargeId"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}
