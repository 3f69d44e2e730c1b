package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"platefinder/entities"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Slot{}); err != nil {
		log.Fatalf("Error migrating slot database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
