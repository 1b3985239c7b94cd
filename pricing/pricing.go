package pricing

import "github.com/FreshDev-Capstone/bundle-up-sub000/models"

const (
	TypeRetail    = "retail"
	TypeWholesale = "wholesale"
)

// Resolved is the price/inventory pair a given viewer is allowed to
// buy against.
type Resolved struct {
	Price       float64 `json:"price"`
	Inventory   int     `json:"inventory"`
	PricingType string  `json:"pricingType"`
}

// Resolve picks the applicable tier for a role. Admin and b2b buy at
// the wholesale price against box inventory; b2c (and anyone
// unauthenticated, since ParseRole falls back to b2c) buys at the
// retail price against carton inventory.
func Resolve(product models.Product, role models.Role) Resolved {
	switch role {
	case models.RoleAdmin, models.RoleB2B:
		return Resolved{
			Price:       product.B2BPrice,
			Inventory:   product.InventoryByBox,
			PricingType: TypeWholesale,
		}
	default:
		return Resolved{
			Price:       product.B2CPrice,
			Inventory:   product.InventoryByCarton,
			PricingType: TypeRetail,
		}
	}
}

// Quote is the admin compare view: the resolved tier plus both raw
// price/inventory pairs side by side. Display concern only.
type Quote struct {
	Resolved
	B2CPrice          float64 `json:"b2cPrice"`
	B2BPrice          float64 `json:"b2bPrice"`
	InventoryByCarton int     `json:"inventoryByCarton"`
	InventoryByBox    int     `json:"inventoryByBox"`
}

func Compare(product models.Product, role models.Role) Quote {
	return Quote{
		Resolved:          Resolve(product, role),
		B2CPrice:          product.B2CPrice,
		B2BPrice:          product.B2BPrice,
		InventoryByCarton: product.InventoryByCarton,
		InventoryByBox:    product.InventoryByBox,
	}
}
