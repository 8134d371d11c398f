package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	// Rate limit: 100 requests / 15 phút per IP
	rateLimiter := middleware.NewRateLimiter(100, 15*time.Minute)

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.FrontendURL),
		rateLimiter.Middleware(),
	)

	// Static file serving cho local driver
	// MinIO driver serve trực tiếp từ object storage endpoint
	if ls, ok := c.Storage.(*storage.LocalStorage); ok {
		router.Static("/uploads", ls.Root())
	}

	// Health check
	router.GET("/health", healthCheckHandler(c))

	api := router.Group("/api")
	{
		setupProjectRoutes(api, c)
		setupClientRoutes(api, c)
		setupContactRoutes(api, c)
		setupNewsletterRoutes(api, c)
	}

	return router
}

// ========================================
// PROJECT ROUTES
// ========================================
func setupProjectRoutes(api *gin.RouterGroup, c *container.Container) {
	projects := api.Group("/projects")
	{
		projects.GET("", c.ProjectHandler.GetProjects)
		projects.POST("", c.ProjectHandler.CreateProject)
		projects.GET("/:id", c.ProjectHandler.GetProjectByID)
	}
}

// ========================================
// CLIENT ROUTES
// ========================================
func setupClientRoutes(api *gin.RouterGroup, c *container.Container) {
	clients := api.Group("/clients")
	{
		clients.GET("", c.ClientHandler.GetClients)
		clients.POST("", c.ClientHandler.CreateClient)
		clients.GET("/:id", c.ClientHandler.GetClientByID)
	}
}

// ========================================
// CONTACT ROUTES
// ========================================
func setupContactRoutes(api *gin.RouterGroup, c *container.Container) {
	contact := api.Group("/contact")
	{
		contact.GET("", c.ContactHandler.GetContacts)
		contact.POST("", c.ContactHandler.SubmitContact)
		contact.GET("/stats/summary", c.ContactHandler.GetStats)
		contact.GET("/export", c.ContactHandler.ExportContacts)
		contact.GET("/:id", c.ContactHandler.GetContactByID)
	}
}

// ========================================
// NEWSLETTER ROUTES
// ========================================
func setupNewsletterRoutes(api *gin.RouterGroup, c *container.Container) {
	newsletter := api.Group("/newsletter")
	{
		newsletter.GET("", c.NewsletterHandler.GetSubscribers)
		newsletter.POST("/subscribe", c.NewsletterHandler.Subscribe)
		newsletter.POST("/unsubscribe", c.NewsletterHandler.Unsubscribe)
		newsletter.GET("/stats", c.NewsletterHandler.GetStats)
		newsletter.GET("/export", c.NewsletterHandler.ExportSubscribers)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis - degraded nhưng không fail, cache là optional
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
