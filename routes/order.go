package routes

import (
	orderControllers "github.com/FreshDev-Capstone/bundle-up-sub000/controllers/order"
	"github.com/FreshDev-Capstone/bundle-up-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers the buyer-facing order endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orderGroup := api.Group("/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.POST("", orderControllers.CreateOrder(db))
		orderGroup.GET("", orderControllers.GetOrders(db))
		orderGroup.GET("/history", orderControllers.GetOrderHistory(db))
		orderGroup.GET("/:id", orderControllers.GetOrderByID(db))
	}
}
