package seed

import (
	"log"

	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"gorm.io/gorm"
)

var defaultProducts = []models.Product{
	{
		Name: "Pasture-Raised Brown Dozen", Description: "A dozen pasture-raised brown eggs.",
		Category: "dozen", EggColor: "brown", EggCount: 12,
		B2CPrice: 5.99, B2BPrice: 4.25, InventoryByCarton: 120, InventoryByBox: 40,
		IsAvailable: true, IsActive: true,
	},
	{
		Name: "Cage-Free White Dozen", Description: "A dozen cage-free white eggs.",
		Category: "dozen", EggColor: "white", EggCount: 12,
		B2CPrice: 3.99, B2BPrice: 2.49, InventoryByCarton: 200, InventoryByBox: 80,
		IsAvailable: true, IsActive: true,
	},
	{
		Name: "Organic Brown Half Dozen", Description: "Six certified-organic brown eggs.",
		Category: "half-dozen", EggColor: "brown", EggCount: 6,
		B2CPrice: 3.49, B2BPrice: 2.25, InventoryByCarton: 90, InventoryByBox: 30,
		IsAvailable: true, IsActive: true,
	},
	{
		Name: "Jumbo White 18-Pack", Description: "Eighteen jumbo white eggs.",
		Category: "18-pack", EggColor: "white", EggCount: 18,
		B2CPrice: 6.49, B2BPrice: 4.75, InventoryByCarton: 60, InventoryByBox: 25,
		IsAvailable: true, IsActive: true,
	},
	{
		Name: "Heritage Blue Dozen", Description: "A dozen heritage-breed blue eggs.",
		Category: "dozen", EggColor: "blue", EggCount: 12,
		B2CPrice: 7.99, B2BPrice: 5.99, InventoryByCarton: 45, InventoryByBox: 15,
		IsAvailable: true, IsActive: true,
	},
	{
		Name: "Duck Egg Half Dozen", Description: "Six free-range duck eggs.",
		Category: "half-dozen", EggColor: "white", EggCount: 6,
		B2CPrice: 8.99, B2BPrice: 6.50, InventoryByCarton: 30, InventoryByBox: 10,
		IsAvailable: true, IsActive: true,
	},
}

// Products bulk-loads the catalog the first time the service boots
// against an empty database. Subsequent boots are no-ops.
func Products(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(&defaultProducts).Error; err != nil {
		return err
	}
	log.Printf("seeded %d products", len(defaultProducts))
	return nil
}
