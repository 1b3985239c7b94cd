package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleB2C   Role = "b2c"
	RoleB2B   Role = "b2b"
)

// ParseRole maps a raw role string to one of the three known roles.
// Anything unknown (including the empty string) falls back to b2c,
// which is also the tier used for unauthenticated viewers.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleB2B:
		return RoleB2B
	default:
		return RoleB2C
	}
}

type User struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email           string    `gorm:"unique;not null" json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Role            Role      `gorm:"type:VARCHAR(10);default:'b2c'" json:"role"`
	CompanyName     string    `json:"companyName,omitempty"`
	GoogleID        string    `gorm:"index" json:"-"`
	PasswordHash    string    `json:"-"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	LastLoginAt     time.Time `json:"lastLoginAt"`
	Addresses       []Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Cart            *Cart     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	Orders          []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Address struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"userId"`
	Street    string    `gorm:"not null" json:"street"`
	City      string    `gorm:"not null" json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zipCode"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
