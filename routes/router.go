package routes

import (
	"github.com/leadflowbr/leadflow_end/repository"
	"github.com/leadflowbr/leadflow_end/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all route groups.
func RegisterRoutes(router *gin.Engine) {
	RegisterAuthRoutes(router)
	RegisterLeadRoutes(router)
	RegisterProspectRoutes(router)
	RegisterBillingRoutes(router)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/api/db-status", func(c *gin.Context) {
		status, err := repository.GetDatabaseStatus()
		if err != nil {
			utils.ErrorResponse(c, "database status unavailable: "+err.Error(), 500)
			return
		}
		c.JSON(200, status)
	})
}
