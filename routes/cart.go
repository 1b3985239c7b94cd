package routes

import (
	cartControllers "github.com/FreshDev-Capstone/bundle-up-sub000/controllers/cart"
	"github.com/FreshDev-Capstone/bundle-up-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the persisted-cart endpoints.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("", cartControllers.AddItem(db))
		cartGroup.PUT("/:productId", cartControllers.UpdateItem(db))
		cartGroup.DELETE("/:productId", cartControllers.RemoveItem(db))
		cartGroup.DELETE("", cartControllers.ClearCart(db))
	}
}
