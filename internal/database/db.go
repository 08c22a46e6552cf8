package database

import (
	"log"

	"forum/internal/config"
	"forum/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}

	log.Println("Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.DeletedPost{},
		&models.DeletedComment{},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}

	if err := SeedRoles(DB); err != nil {
		log.Fatal("Role seeding failed:", err)
	}

	log.Println("Database migration completed")
}

// SeedRoles inserts the fixed role set. Idempotent: existing rows are left
// untouched.
func SeedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{ID: models.RoleAdminID, Name: models.RoleAdmin},
		{ID: models.RoleUserID, Name: models.RoleUser},
	}
	for _, role := range roles {
		var existing models.Role
		if err := db.First(&existing, role.ID).Error; err == nil {
			continue
		}
		if err := db.Create(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
