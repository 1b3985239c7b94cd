package routes

import (
	userControllers "github.com/FreshDev-Capstone/bundle-up-sub000/controllers/user"
	"github.com/FreshDev-Capstone/bundle-up-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the profile and address-book endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	userGroup := api.Group("/users/me")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("", userControllers.GetProfile(db))
		userGroup.PUT("", userControllers.UpdateProfile(db))

		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("", userControllers.ListAddresses(db))
			addressGroup.POST("", userControllers.CreateAddress(db))
			addressGroup.PUT("/:id", userControllers.UpdateAddress(db))
			addressGroup.DELETE("/:id", userControllers.DeleteAddress(db))
		}
	}
}
