package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"carto_censal/internal/models"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB
)

// InitDB initializes the database connection using environment variables
// and makes sure the PostGIS extension and the estado catalog exist.
// The census layer tables themselves (parajes, localidades, gobiernos
// locales, departamentos) are loaded by external GIS tooling and are
// never migrated here.
func InitDB() {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	// Load environment variables (with defaults)
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbname := getEnv("DB_NAME", "cartocensal_2030")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	// Build Data Source Name
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	// Open GORM connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Enable necessary extensions
	db.Exec("CREATE EXTENSION IF NOT EXISTS postgis;")

	// Only the app-owned status catalog is migrated and seeded
	if err := db.AutoMigrate(&models.EstadoSituacion{}); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}
	seedEstados(db)

	// Assign to global
	DB = db
}

// seedEstados inserts the default review statuses when the catalog is empty.
func seedEstados(db *gorm.DB) {
	var count int64
	db.Model(&models.EstadoSituacion{}).Count(&count)
	if count > 0 {
		return
	}
	if err := db.Create(&models.DefaultEstados).Error; err != nil {
		log.Printf("seeding estado_situacion failed: %v", err)
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

// AppPort returns the HTTP listen port.
func AppPort() string {
	return getEnv("APP_PORT", "8080")
}

// FrontendDir returns the directory holding the static frontend bundle.
func FrontendDir() string {
	return getEnv("FRONTEND_DIR", "./frontend")
}

// QueryTimeout returns the per-query deadline for store calls.
func QueryTimeout() time.Duration {
	raw := getEnv("QUERY_TIMEOUT", "30s")
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("invalid QUERY_TIMEOUT %q, using 30s", raw)
		return 30 * time.Second
	}
	return d
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}
