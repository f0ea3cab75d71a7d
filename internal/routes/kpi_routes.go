package routes

import (
	"carto_censal/internal/controllers"

	"github.com/gin-gonic/gin"
)

func KPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/kpis", controllers.GetKPIs)
	}
}
