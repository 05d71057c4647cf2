package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/leadflowbr/leadflow_end/controllers"
	"github.com/leadflowbr/leadflow_end/middleware"
)

// RegisterProspectRoutes registers prospecting search and crawl routes.
func RegisterProspectRoutes(router *gin.Engine) {
	prospectRoutes := router.Group("/api/prospect")
	prospectRoutes.Use(middleware.AuthMiddleware())

	prospectRoutes.POST("/search", controllers.SearchPlaces)
	prospectRoutes.POST("/web-search", controllers.SearchWeb)
	prospectRoutes.POST("/crawl", controllers.CrawlSite)
	prospectRoutes.POST("/import", controllers.ImportProspects)
}
