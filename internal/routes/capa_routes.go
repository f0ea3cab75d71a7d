package routes

import (
	"carto_censal/internal/controllers"

	"github.com/gin-gonic/gin"
)

func CapaRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/capas", controllers.ListCapas)
		api.GET("/pjes_censal_2022", controllers.GetParajes)
		api.GET("/loc_censal_2022", controllers.GetLocalidades)
		api.GET("/gob_locales_2022", controllers.GetGobiernosLocales)
		api.GET("/dpto_chaco", controllers.GetDptoChaco)
		api.GET("/departamentos", controllers.ListDepartamentos)
	}
}
