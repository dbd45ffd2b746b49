// scripts/create_admin.go bootstraps the central admin account.
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/estiakahmed98/islami-dawa-production-sub001/config"
	"github.com/estiakahmed98/islami-dawa-production-sub001/database"
	"github.com/estiakahmed98/islami-dawa-production-sub001/models"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("set ADMIN_EMAIL and ADMIN_PASSWORD")
	}

	var existing models.User
	err := database.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		fmt.Println("admin already exists:", email)
		os.Exit(0)
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to query users: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := models.User{
		Name:     "Central Admin",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleCentralAdmin,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}
	fmt.Println("created central admin:", email)
}
