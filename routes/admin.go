package routes

import (
	orderControllers "github.com/FreshDev-Capstone/bundle-up-sub000/controllers/order"
	productControllers "github.com/FreshDev-Capstone/bundle-up-sub000/controllers/product"
	userControllers "github.com/FreshDev-Capstone/bundle-up-sub000/controllers/user"
	"github.com/FreshDev-Capstone/bundle-up-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the /api/admin/* endpoints; all of them
// require an admin access token.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(db))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(db))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatus(db))
		}

		userAdmin := adminGroup.Group("/users")
		{
			userAdmin.GET("", userControllers.GetAllUsers(db))
			userAdmin.PUT("/:id/role", userControllers.UpdateUserRole(db))
		}
	}
}
