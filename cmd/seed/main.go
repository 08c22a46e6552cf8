package main

import (
	"log"
	"os"

	"forum/internal/config"
	"forum/internal/database"
	"forum/internal/models"
	"forum/internal/utils"

	"github.com/google/uuid"
)

// Creates the initial admin account. Idempotent: an existing user with
// the same username is left untouched.
func main() {
	cfg := config.Load()
	database.Connect(cfg)
	database.Migrate()

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_USERNAME, ADMIN_PASSWORD")
	}

	var admin models.User
	result := database.DB.Where("username = ?", adminUsername).First(&admin)
	if result.Error == nil {
		log.Println("Admin user already exists:", admin.Username)
		return
	}

	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin = models.User{
		ID:           uuid.New(),
		Username:     adminUsername,
		PasswordHash: passwordHash,
		RoleID:       models.RoleAdminID,
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Println("Admin user created successfully:", admin.Username)
}
