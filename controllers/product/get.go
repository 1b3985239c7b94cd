package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/FreshDev-Capstone/bundle-up-sub000/middleware"
	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"github.com/FreshDev-Capstone/bundle-up-sub000/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/products
//
// Works with or without a token; the caller's role picks which
// price/inventory pair each row carries.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := middleware.UserRole(c)

		query := db.Model(&models.Product{}).Where("is_active = ?", true)

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if eggColor := c.Query("eggColor"); eggColor != "" {
			query = query.Where("egg_color = ?", eggColor)
		}
		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}

		var products []models.Product
		if err := query.Order("name asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"products": buildViews(products, role),
				"total":    len(products),
			},
		})
	}
}

// productIDParam parses the :id path segment; a non-numeric id cannot
// match any product.
func productIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil
}

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := middleware.UserRole(c)

		id, ok := productIDParam(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}

		var product models.Product
		err := db.Where("is_active = ?", true).First(&product, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    gin.H{"product": buildView(product, role)},
		})
	}
}

// view is a product row with the viewer's resolved tier attached.
type view struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	EggColor    string  `json:"eggColor"`
	EggCount    int     `json:"eggCount"`
	ImageURL    string  `json:"imageUrl"`
	IsAvailable bool    `json:"isAvailable"`
	Price       float64 `json:"price"`
	Inventory   int     `json:"inventory"`
	PricingType string  `json:"pricingType"`
}

// adminView additionally exposes both raw tiers (the compare view).
type adminView struct {
	view
	B2CPrice          float64 `json:"b2cPrice"`
	B2BPrice          float64 `json:"b2bPrice"`
	InventoryByCarton int     `json:"inventoryByCarton"`
	InventoryByBox    int     `json:"inventoryByBox"`
}

func buildView(p models.Product, role models.Role) interface{} {
	resolved := pricing.Resolve(p, role)
	base := view{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		EggColor:    p.EggColor,
		EggCount:    p.EggCount,
		ImageURL:    p.ImageURL,
		IsAvailable: p.IsAvailable,
		Price:       resolved.Price,
		Inventory:   resolved.Inventory,
		PricingType: resolved.PricingType,
	}
	if role != models.RoleAdmin {
		return base
	}
	quote := pricing.Compare(p, role)
	return adminView{
		view:              base,
		B2CPrice:          quote.B2CPrice,
		B2BPrice:          quote.B2BPrice,
		InventoryByCarton: quote.InventoryByCarton,
		InventoryByBox:    quote.InventoryByBox,
	}
}

func buildViews(products []models.Product, role models.Role) []interface{} {
	out := make([]interface{}, 0, len(products))
	for _, p := range products {
		out = append(out, buildView(p, role))
	}
	return out
}
