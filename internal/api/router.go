package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"gofolio/internal/api/middleware"
	"gofolio/internal/metrics"
)

// NewRouter builds the Gin engine with correlation ids, request logging and
// Prometheus collection installed.
func NewRouter(logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.CorrelationIDMiddleware(),
		middleware.SlogLoggerMiddleware(logger),
		metrics.GinMiddleware(),
		gin.Recovery(),
	)
	return router
}
