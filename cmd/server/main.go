package main

import (
	"log"
	"net/http"

	"carto_censal/internal/config"
	"carto_censal/internal/controllers"
	"carto_censal/internal/layers"
	"carto_censal/internal/logger"
	"carto_censal/internal/middleware"
	"carto_censal/internal/routes"
	"carto_censal/internal/store"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Wire the query service into the controllers
	controllers.Setup(layers.NewService(store.New(config.DB, config.QueryTimeout())))

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.AppPort()
	log.Println("🚀 Server running at", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
