package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"platefinder/internal/utils"
)

func ConnectDB() (*gorm.DB, error) {
	path := utils.GetConfig("DB_PATH")
	if path == "" {
		path = "platefinder.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}
