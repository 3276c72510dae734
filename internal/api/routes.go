package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gofolio/internal/api/middleware"
	"gofolio/internal/session"
	"gofolio/internal/storage"
)

// RegisterRoutes wires the health and metrics endpoints. Entity CRUD routes
// live with the frontend deployment and are not served from here.
func RegisterRoutes(router *gin.Engine, conn *storage.ConnManager, store *storage.UnifiedStorage, sessions session.Store) {
	router.Use(middleware.SessionMiddleware(sessions))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// connection-status contract consumed by external health checks
	router.GET("/health/storage", func(c *gin.Context) {
		c.JSON(http.StatusOK, conn.Report())
	})

	// readiness probe: a round trip through the facade proves whichever
	// adapter is active can serve reads
	router.GET("/health/ready", func(c *gin.Context) {
		if _, err := store.GetAllLanguages(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "storage unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
