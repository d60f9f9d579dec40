package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts the enrollment API under /api behind apiMiddlewares, plus
// the health and metrics endpoints.
func NewRouter(handler *EnrollmentHandler, gatherer prometheus.Gatherer, apiMiddlewares ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), NewRequestIDMiddleware())

	router.GET("/health", Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := router.Group("/api", apiMiddlewares...)
	{
		api.POST("/courses/:"+CourseIDKey+"/pay", handler.Pay)
		api.GET("/info", handler.GetInfo)
	}

	return router
}
