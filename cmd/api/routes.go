package main

import (
	"github.com/gin-gonic/gin"

	"github.com/dmagallanes2/coldcallingassistant/internal/httpapi"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal packages.
func registerRoutes(r *gin.Engine, h httpapi.Handlers) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Session-scoped API. Every route resolves (or creates) the operator's
	// session from the X-Session-Id header.
	v1 := r.Group("/v1")
	v1.Use(httpapi.SessionMiddleware(h.Sessions))
	{
		calls := v1.Group("/calls")
		{
			calls.POST("", h.LogCall)
			calls.GET("", h.ListCalls)
			calls.GET("/stats", h.CallStats)
			calls.GET("/export", h.ExportCalls)
		}

		clips := v1.Group("/audio")
		{
			clips.POST("", h.UploadAudio)
			clips.GET("", h.ListAudio)
			clips.GET("/:label", h.GetAudio)
		}
	}
}
