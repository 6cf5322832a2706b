package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter builds the gin engine with all routes and middleware.
func SetupRouter(h *Handler) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", RequestIDHeader}
	router.Use(cors.New(corsConfig))
	router.Use(RequestID())
	router.Use(Metrics())

	router.GET("/", h.handleRoot)
	router.GET("/health", h.handleHealth)
	router.GET("/schema", h.handleSchema)
	router.POST("/query", h.handleQuery)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
