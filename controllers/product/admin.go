package productControllers

import (
	"errors"
	"net/http"

	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	EggColor          string  `json:"eggColor"`
	EggCount          int     `json:"eggCount" binding:"omitempty,gt=0"`
	ImageURL          string  `json:"imageUrl"`
	B2CPrice          float64 `json:"b2cPrice" binding:"required,gt=0"`
	B2BPrice          float64 `json:"b2bPrice" binding:"required,gt=0"`
	InventoryByCarton int     `json:"inventoryByCarton" binding:"gte=0"`
	InventoryByBox    int     `json:"inventoryByBox" binding:"gte=0"`
}

type UpdateProductInput struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Category          *string  `json:"category"`
	EggColor          *string  `json:"eggColor"`
	EggCount          *int     `json:"eggCount"`
	ImageURL          *string  `json:"imageUrl"`
	B2CPrice          *float64 `json:"b2cPrice"`
	B2BPrice          *float64 `json:"b2bPrice"`
	InventoryByCarton *int     `json:"inventoryByCarton"`
	InventoryByBox    *int     `json:"inventoryByBox"`
	IsAvailable       *bool    `json:"isAvailable"`
}

// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:              input.Name,
			Description:       input.Description,
			Category:          input.Category,
			EggColor:          input.EggColor,
			EggCount:          input.EggCount,
			ImageURL:          input.ImageURL,
			B2CPrice:          input.B2CPrice,
			B2BPrice:          input.B2BPrice,
			InventoryByCarton: input.InventoryByCarton,
			InventoryByBox:    input.InventoryByBox,
			IsAvailable:       true,
			IsActive:          true,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"product": product}})
	}
}

// PUT /api/admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productIDParam(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch product"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.EggColor != nil {
			updates["egg_color"] = *input.EggColor
		}
		if input.EggCount != nil {
			updates["egg_count"] = *input.EggCount
		}
		if input.ImageURL != nil {
			updates["image_url"] = *input.ImageURL
		}
		if input.B2CPrice != nil {
			if *input.B2CPrice <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "b2cPrice must be positive"})
				return
			}
			updates["b2c_price"] = *input.B2CPrice
		}
		if input.B2BPrice != nil {
			if *input.B2BPrice <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "b2bPrice must be positive"})
				return
			}
			updates["b2b_price"] = *input.B2BPrice
		}
		if input.InventoryByCarton != nil {
			if *input.InventoryByCarton < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "inventoryByCarton must not be negative"})
				return
			}
			updates["inventory_by_carton"] = *input.InventoryByCarton
		}
		if input.InventoryByBox != nil {
			if *input.InventoryByBox < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "inventoryByBox must not be negative"})
				return
			}
			updates["inventory_by_box"] = *input.InventoryByBox
		}
		if input.IsAvailable != nil {
			updates["is_available"] = *input.IsAvailable
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"product": product}})
	}
}

// DELETE /api/admin/products/:id
//
// Soft delete: the row stays for order history, it just stops being
// listed or purchasable.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productIDParam(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}

		result := db.Model(&models.Product{}).
			Where("id = ? AND is_active = ?", id, true).
			Update("is_active", false)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"message": "Product deleted"}})
	}
}
