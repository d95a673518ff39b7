package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hawkerhub/hawker-app/catalog"
	"github.com/hawkerhub/hawker-app/config"
	"github.com/hawkerhub/hawker-app/database"
	"github.com/hawkerhub/hawker-app/models"
	"github.com/hawkerhub/hawker-app/router"
	"github.com/hawkerhub/hawker-app/utils"
	"gorm.io/gorm"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := seedReferenceData(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed reference data: %v", err)
	}

	r := router.SetupRouter(db)
	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

// seedReferenceData prefers a CATALOG_FILE document when one is
// configured, else loads the built-in seed.
func seedReferenceData(db *gorm.DB) error {
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		static, err := catalog.LoadFile(path)
		if err != nil {
			return err
		}
		return database.SeedFromCatalog(db, static)
	}
	return database.Seed(db)
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Customer{},
		&models.HawkerCentre{},
		&models.Stall{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Location{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
