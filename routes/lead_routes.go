package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/leadflowbr/leadflow_end/controllers"
	"github.com/leadflowbr/leadflow_end/middleware"
)

// RegisterLeadRoutes registers lead, kanban and export routes.
func RegisterLeadRoutes(router *gin.Engine) {
	leadRoutes := router.Group("/api/leads")
	leadRoutes.Use(middleware.AuthMiddleware())

	leadRoutes.GET("/", controllers.GetLeadList)
	leadRoutes.POST("/", controllers.CreateLead)
	leadRoutes.GET("/export", controllers.ExportLeadsCSV)
	leadRoutes.GET("/kanban", controllers.GetKanbanBoard)
	leadRoutes.GET("/stream", controllers.StreamLeadChanges)
	leadRoutes.GET("/:id", controllers.GetLeadDetail)
	leadRoutes.PATCH("/:id", controllers.UpdateLead)
	leadRoutes.DELETE("/:id", controllers.DeleteLead)
	leadRoutes.GET("/:id/score", controllers.GetLeadScore)
	leadRoutes.PATCH("/:id/stage", controllers.ChangeLeadStage)
	leadRoutes.POST("/:id/tags", controllers.AddTag)
	leadRoutes.DELETE("/:id/tags/:tag", controllers.RemoveTag)
}
