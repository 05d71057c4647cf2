package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/leadflowbr/leadflow_end/controllers"
	"github.com/leadflowbr/leadflow_end/middleware"
)

// RegisterBillingRoutes registers checkout routes. The confirm callback is
// called by the gateway and authenticates with the shared secret instead of
// a user token.
func RegisterBillingRoutes(router *gin.Engine) {
	billingRoutes := router.Group("/api/billing")

	billingRoutes.POST("/checkout", middleware.AuthMiddleware(), controllers.CreateCheckout)
	billingRoutes.POST("/confirm", controllers.ConfirmCheckout)
}
