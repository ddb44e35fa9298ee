package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/vulndesk-api/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Everything below requires authentication
	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware())

	clientGroup := authed.Group("/clients")
	{
		clientGroup.GET("", ListClients)
		clientGroup.POST("", CreateClient)
		clientGroup.GET("/:id", GetClient)
		clientGroup.PUT("/:id", UpdateClient)
		clientGroup.DELETE("/:id", DeleteClient)
		clientGroup.POST("/:id/contacts", AddClientContact)
		clientGroup.PUT("/:id/contacts/:contactId", UpdateClientContact)
		clientGroup.DELETE("/:id/contacts/:contactId", DeleteClientContact)
	}

	assetGroup := authed.Group("/assets")
	{
		assetGroup.GET("", ListAssets)
		assetGroup.POST("", CreateAsset)
		assetGroup.GET("/:id", GetAsset)
		assetGroup.PUT("/:id", UpdateAsset)
		assetGroup.DELETE("/:id", DeleteAsset)
	}

	vulnerabilityGroup := authed.Group("/vulnerabilities")
	{
		vulnerabilityGroup.GET("", ListVulnerabilities)
		vulnerabilityGroup.POST("", CreateVulnerability)
		vulnerabilityGroup.GET("/:id", GetVulnerability)
		vulnerabilityGroup.PUT("/:id", UpdateVulnerability)
		vulnerabilityGroup.DELETE("/:id", DeleteVulnerability)
	}

	ticketGroup := authed.Group("/tickets")
	{
		ticketGroup.GET("", ListTickets)
		ticketGroup.POST("", CreateTicket)
		ticketGroup.GET("/:id", GetTicket)
		ticketGroup.PUT("/:id", UpdateTicket)
		ticketGroup.DELETE("/:id", DeleteTicket)
		ticketGroup.GET("/:id/messages", ListTicketMessages)
		ticketGroup.POST("/:id/messages", AddTicketMessage)
	}

	projectGroup := authed.Group("/projects")
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
		projectGroup.GET("/:id/gantt", ListGanttTasks)
		projectGroup.DELETE("/:id/gantt", DeleteProjectGanttTasks)
	}

	ganttGroup := authed.Group("/gantt")
	{
		ganttGroup.POST("", CreateGanttTask)
		ganttGroup.GET("/:id", GetGanttTask)
		ganttGroup.PUT("/:id", UpdateGanttTask)
		ganttGroup.DELETE("/:id", DeleteGanttTask)
	}

	referenceGroup := authed.Group("/reference")
	{
		referenceGroup.GET("/asset-types", ListAssetTypes)
		referenceGroup.GET("/scanners", ListScanners)
	}

	reportGroup := authed.Group("/reports")
	{
		reportGroup.GET("/summary", GetSummaryReport)
		reportGroup.GET("/vulnerabilities", GetVulnerabilityReport)
		reportGroup.GET("/tickets", GetTicketReport)
		reportGroup.GET("/assets", GetAssetReport)
		reportGroup.GET("/clients", GetClientOverviews)
	}

	// Management endpoints - workers only
	workerOnly := router.Group("")
	workerOnly.Use(middleware.AuthMiddleware(), middleware.WorkerMiddleware())

	workerGroup := workerOnly.Group("/workers")
	{
		workerGroup.GET("", ListWorkers)
		workerGroup.POST("", CreateWorker)
		workerGroup.GET("/:id", GetWorker)
		workerGroup.PUT("/:id", UpdateWorker)
		workerGroup.DELETE("/:id", DeleteWorker)
	}

	catalogAdmin := workerOnly.Group("/reference")
	{
		catalogAdmin.POST("/asset-types", CreateAssetType)
		catalogAdmin.PUT("/asset-types/:id", UpdateAssetType)
		catalogAdmin.DELETE("/asset-types/:id", DeleteAssetType)
		catalogAdmin.POST("/scanners", CreateScanner)
		catalogAdmin.PUT("/scanners/:id", UpdateScanner)
		catalogAdmin.DELETE("/scanners/:id", DeleteScanner)
	}
}
