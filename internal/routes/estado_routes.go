package routes

import (
	"carto_censal/internal/controllers"

	"github.com/gin-gonic/gin"
)

func EstadoRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/estado", controllers.CambiarEstado)
	}
}
