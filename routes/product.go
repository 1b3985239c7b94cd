package routes

import (
	productControllers "github.com/FreshDev-Capstone/bundle-up-sub000/controllers/product"
	"github.com/FreshDev-Capstone/bundle-up-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupProductRoutes registers the catalog endpoints. Auth is
// optional: anonymous viewers browse at the retail tier.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	productGroup := api.Group("/products")
	productGroup.Use(middleware.OptionalToken)
	{
		productGroup.GET("", productControllers.GetProducts(db))
		productGroup.GET("/:id", productControllers.GetProductByID(db))
	}
}
