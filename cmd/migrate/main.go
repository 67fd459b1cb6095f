package main

import (
	"log"

	"ai-litepaper-be/internal/config"
	"ai-litepaper-be/internal/model"
	"ai-litepaper-be/pkg/database"
)

func main() {
	cfg := config.Load()

	if cfg.Database.Driver != "postgres" {
		log.Fatal("Migration requires DB_DRIVER=postgres")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	log.Println("Running migrations...")
	if err := db.AutoMigrate(&model.Litepaper{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✅ Migrations complete")
}
