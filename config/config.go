package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the configured MySQL database, or a local sqlite file when
// no DB_HOST is set (development and tests).
func InitDB() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return gorm.Open(sqlite.Open(getEnv("DB_FILE", "hawkerhub.db")), gormConfig)
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("DB_USER", "root"),
		os.Getenv("DB_PASS"),
		host,
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "hawkerhub"),
	)
	return gorm.Open(mysql.Open(dsn), gormConfig)
}
