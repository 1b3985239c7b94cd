package routes

import (
	authControllers "github.com/FreshDev-Capstone/bundle-up-sub000/controllers/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public /api/auth/* endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db))
		authGroup.POST("/refresh", authControllers.Refresh(db))
		authGroup.POST("/google", authControllers.GoogleLogin(db))
	}
}
