package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carto_censal/internal/layers"
	"carto_censal/internal/middleware"
)

// Layers is the shared query service, set once at startup via Setup.
var Layers *layers.Service

// Setup wires the controllers to the layer service.
func Setup(s *layers.Service) {
	Layers = s
}

// ListCapas returns the static layer catalog
func ListCapas(c *gin.Context) {
	capas := make([]gin.H, 0, len(layers.Catalog))
	for _, l := range layers.Catalog {
		capas = append(capas, gin.H{"id": l.ID, "nombre": l.Nombre})
	}
	c.JSON(http.StatusOK, gin.H{"capas": capas})
}

// serveLayer runs the FeatureCollection query for one catalog layer and
// writes it out, translating store failures to a 500 with a detail body.
func serveLayer(c *gin.Context, layerID string, filter layers.Filter) {
	layer, ok := layers.LayerByID(layerID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Capa desconocida: " + layerID})
		return
	}

	fc, err := Layers.Collection(c.Request.Context(), layer, filter)
	if err != nil {
		middleware.Log(c).WithError(err).Error("layer query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fc)
}

// GetParajes serves the census-point layer, optionally filtered by
// department (?depto=..., default "todos")
func GetParajes(c *gin.Context) {
	depto := c.DefaultQuery("depto", layers.FilterTodos)
	serveLayer(c, "pjes_censal_2022", layers.ResolveDepartamento(depto))
}

// GetLocalidades serves the census-localities layer
func GetLocalidades(c *gin.Context) {
	serveLayer(c, "loc_censal_2022", layers.Filter{})
}

// GetGobiernosLocales serves the local-government boundaries layer
func GetGobiernosLocales(c *gin.Context) {
	serveLayer(c, "gob_locales_2022", layers.Filter{})
}

// GetDptoChaco serves the department boundaries layer
func GetDptoChaco(c *gin.Context) {
	serveLayer(c, "dpto_chaco", layers.Filter{})
}

// ListDepartamentos returns department names sorted ascending
func ListDepartamentos(c *gin.Context) {
	nombres, err := Layers.Departamentos(c.Request.Context())
	if err != nil {
		middleware.Log(c).WithError(err).Error("departamentos query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"departamentos": nombres})
}
