package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"carto_censal/internal/metrics"
	"carto_censal/internal/middleware"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())
	r.Use(middleware.RequestID())

	// API routes
	CapaRoutes(r)
	KPIRoutes(r)
	EstadoRoutes(r)

	// Frontend + operational endpoints
	StaticRoutes(r)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	return r
}
