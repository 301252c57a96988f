// Package http wires the gin engine: middleware chain, route table, and the
// role gates in front of each handler.
package http

import (
	"github.com/gin-gonic/gin"

	"curator/internal/interfaces/http/handlers"
	"curator/internal/interfaces/http/middleware"
	"curator/internal/shared/authorization"
	"curator/internal/shared/utils"
)

// RouterConfig carries the constructed handlers and middleware.
type RouterConfig struct {
	Mode string

	AuthHandler      *handlers.AuthHandler
	AdminHandler     *handlers.AdminHandler
	KnowledgeHandler *handlers.KnowledgeHandler
	ReportHandler    *handlers.ReportHandler

	AuthMiddleware *middleware.AuthMiddleware
	// RateLimiter throttles login attempts; nil disables throttling.
	RateLimiter *middleware.RateLimiter
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logging())

	router.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "", gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		login := []gin.HandlerFunc{cfg.AuthHandler.Login}
		if cfg.RateLimiter != nil {
			login = append([]gin.HandlerFunc{cfg.RateLimiter.Handle()}, login...)
		}
		api.POST("/login", login...)

		authed := api.Group("")
		authed.Use(cfg.AuthMiddleware.Handle())
		{
			authed.POST("/logout", cfg.AuthHandler.Logout)
			authed.GET("/admin-data", cfg.AuthHandler.AdminData)

			// Any authenticated caller may read their own submissions and
			// attachments; ownership is enforced inside the usecases.
			authed.GET("/knowledge-requests", cfg.KnowledgeHandler.ListOwn)
			authed.GET("/knowledge-files/:filename", cfg.KnowledgeHandler.Download)

			adminOnly := authed.Group("")
			adminOnly.Use(middleware.RequireRole(authorization.RoleAdmin))
			{
				adminOnly.POST("/knowledge-requests", cfg.KnowledgeHandler.Submit)
			}

			superadminOnly := authed.Group("")
			superadminOnly.Use(middleware.RequireRole(authorization.RoleSuperadmin))
			{
				superadminOnly.GET("/knowledge-requests/pending", cfg.KnowledgeHandler.ListPending)
				superadminOnly.POST("/knowledge-requests/:id/:action", cfg.KnowledgeHandler.Decide)

				superadminOnly.POST("/create-admin", cfg.AdminHandler.CreateAdmin)
				superadminOnly.GET("/active-sessions", cfg.AdminHandler.ActiveSessions)
				superadminOnly.GET("/admin-requests", cfg.AdminHandler.PendingAdminRequests)

				superadminOnly.GET("/sentiment-data", cfg.ReportHandler.SentimentData)
				superadminOnly.GET("/total-admins", cfg.ReportHandler.TotalAdmins)
				superadminOnly.GET("/request-history", cfg.ReportHandler.RequestHistory)
			}
		}
	}

	return router
}
