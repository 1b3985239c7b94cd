package routes

import (
	orderControllers "github.com/FreshDev-Capstone/bundle-up-sub000/controllers/order"
	productControllers "github.com/FreshDev-Capstone/bundle-up-sub000/controllers/product"
	"github.com/FreshDev-Capstone/bundle-up-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOpsRoutes registers the back-office export endpoints, guarded
// by the ops API key rather than a user token.
func SetupOpsRoutes(api *gin.RouterGroup, db *gorm.DB) {
	opsGroup := api.Group("/ops")
	opsGroup.Use(middleware.ValidateAPIKey)
	{
		opsGroup.GET("/products/export", productControllers.ExportProductsToExcel(db))
		opsGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))
	}
}
