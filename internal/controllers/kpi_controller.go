package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carto_censal/internal/layers"
	"carto_censal/internal/middleware"
)

// GetKPIs returns the three grouped counts over the paraje layer,
// optionally restricted by department (?depto=..., default "todos").
// Either all three aggregations succeed or the call fails as a whole.
func GetKPIs(c *gin.Context) {
	depto := c.DefaultQuery("depto", layers.FilterTodos)

	result, err := Layers.KPIs(c.Request.Context(), depto)
	if err != nil {
		middleware.Log(c).WithError(err).Error("kpi query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
