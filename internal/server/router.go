package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/limaJavier/genetic-timetabling/pkg/logger"
	"github.com/limaJavier/genetic-timetabling/pkg/metrics"
	"go.uber.org/zap"
)

func NewRouter(handler *ScheduleHandler, m *metrics.Metrics, l *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(l))
	r.Use(metricsMiddleware(m))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.POST("/schedules", handler.Generate)

	return r
}

func metricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		m.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
