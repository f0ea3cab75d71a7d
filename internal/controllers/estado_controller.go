package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"carto_censal/internal/middleware"
)

// CambiarEstado updates the review status of one paraje. Both fields
// are required and validated before any store call; the frontend sends
// them as numbers. Updating a non-existent id is a silent no-op and
// still acks.
func CambiarEstado(c *gin.Context) {
	var input struct {
		ID     json.Number `json:"id" binding:"required"`
		Estado json.Number `json:"estado" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Faltan parámetros: " + err.Error()})
		return
	}

	id, err := input.ID.Int64()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "id inválido: " + input.ID.String()})
		return
	}
	estado, err := input.Estado.Int64()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "estado inválido: " + input.Estado.String()})
		return
	}

	if err := Layers.SetEstado(c.Request.Context(), id, estado); err != nil {
		middleware.Log(c).WithError(err).Error("estado update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": fmt.Sprintf("Estado actualizado a %d para id %d", estado, id)})
}
