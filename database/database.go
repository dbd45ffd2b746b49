package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/estiakahmed98/islami-dawa-production-sub001/config"
	"github.com/estiakahmed98/islami-dawa-production-sub001/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.ReportRecord{},
		&models.LeaveRequest{},
		&models.EditRequest{},
		&models.Todo{},
		&models.Task{},
		&models.Notification{},
		&models.Markaz{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
