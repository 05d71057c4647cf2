package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/leadflowbr/leadflow_end/controllers"
	"github.com/leadflowbr/leadflow_end/middleware"
)

// RegisterAuthRoutes registers authentication routes.
func RegisterAuthRoutes(router *gin.Engine) {
	authRoutes := router.Group("/api/auth")

	authRoutes.POST("/register", controllers.Register)
	authRoutes.POST("/login", controllers.Login)
	authRoutes.GET("/me", middleware.AuthMiddleware(), controllers.GetCurrentUser)
}
