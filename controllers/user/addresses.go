package userControllers

import (
	"net/http"
	"strconv"

	"github.com/FreshDev-Capstone/bundle-up-sub000/middleware"
	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddressInput struct {
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	IsDefault bool   `json:"isDefault"`
}

// clearDefault drops the default flag from every other address so at
// most one stays default per user.
func clearDefault(tx *gorm.DB, userID string) error {
	return tx.Model(&models.Address{}).
		Where("user_id = ?", userID).
		Update("is_default", false).Error
}

// GET /api/users/me/addresses
func ListAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var addresses []models.Address
		if err := db.Where("user_id = ?", middleware.UserID(c)).
			Order("is_default desc, created_at asc").
			Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch addresses"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"addresses": addresses}})
	}
}

// POST /api/users/me/addresses
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		userID := middleware.UserID(c)
		address := models.Address{
			UserID:    userID,
			Street:    input.Street,
			City:      input.City,
			State:     input.State,
			ZipCode:   input.ZipCode,
			IsDefault: input.IsDefault,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefault {
				if err := clearDefault(tx, userID); err != nil {
					return err
				}
			}
			return tx.Create(&address).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create address"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"address": address}})
	}
}

// PUT /api/users/me/addresses/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var address models.Address
		if err := db.Where("user_id = ?", userID).First(&address, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Address not found"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefault && !address.IsDefault {
				if err := clearDefault(tx, userID); err != nil {
					return err
				}
			}
			address.Street = input.Street
			address.City = input.City
			address.State = input.State
			address.ZipCode = input.ZipCode
			address.IsDefault = input.IsDefault
			return tx.Save(&address).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update address"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"address": address}})
	}
}

// DELETE /api/users/me/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Address not found"})
			return
		}

		result := db.Where("user_id = ?", middleware.UserID(c)).
			Delete(&models.Address{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Address not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"message": "Address deleted"}})
	}
}
