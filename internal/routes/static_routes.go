package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"carto_censal/internal/config"
)

// StaticRoutes serves the Leaflet frontend bundle. The bundle itself is
// built elsewhere; FRONTEND_DIR just points at it.
func StaticRoutes(r *gin.Engine) {
	dir := config.FrontendDir()
	r.StaticFile("/", filepath.Join(dir, "index.html"))
	r.Static("/frontend", dir)
}
