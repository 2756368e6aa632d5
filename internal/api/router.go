package api

import (
	"net/http"

	"github.com/BerylCAtieno/network-navigator/internal/web"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter mounts the JSON API and serves staticDir for every other path.
// An empty staticDir disables static serving.
func NewRouter(h *Handler, staticDir string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLoggingMiddleware(h.logger))

	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		api.GET("/diagnostics", h.ServeDiagnostics)

		api.POST("/messages/generate", h.GenerateMessage)
		api.POST("/messages/variations", h.GenerateVariations)
		api.POST("/messages/save", h.SaveMessage)

		api.GET("/contacts", h.ListContacts)
		api.POST("/contacts", h.CreateContact)
		api.DELETE("/contacts", h.ClearContacts)
		api.GET("/contacts/:id", h.GetContact)
		api.PUT("/contacts/:id", h.UpdateContact)
		api.DELETE("/contacts/:id", h.DeleteContact)
		api.POST("/contacts/:id/interactions", h.AddInteraction)

		api.GET("/tags", h.ListTags)
		api.GET("/analytics", h.Analytics)

		api.GET("/settings", h.GetSettings)
		api.PUT("/settings", h.UpdateSettings)

		api.GET("/export", h.Export)
		api.POST("/import", h.Import)
	}

	if staticDir != "" {
		router.NoRoute(web.Handler(staticDir, h.logger.Named("static")))
	} else {
		router.NoRoute(func(c *gin.Context) {
			h.sendErrorResponse(c, http.StatusNotFound, "not found")
		})
	}

	h.logger.Debug("router ready", zap.String("static_dir", staticDir))
	return router
}
