// Seed script to create or update the admin account
// cmd/create-admin/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strings"

	"admission-portal-api/config"
	"admission-portal-api/models"
	"admission-portal-api/utils"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load .env before reading the flag defaults from the environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	name := flag.String("name", "Administrator", "admin display name")
	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	if !utils.ValidateEmail(*email) {
		log.Fatal("Invalid or missing admin email (use -email or ADMIN_EMAIL)")
	}
	if ok, msg := utils.ValidatePassword(*password); !ok {
		log.Fatal(msg)
	}

	config.InitDB()

	if err := config.DB.AutoMigrate(&models.User{}); err != nil {
		log.Fatal("Failed to migrate users table:", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	normalized := strings.ToLower(strings.TrimSpace(*email))

	var user models.User
	err = config.DB.Where("email = ?", normalized).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Name:     *name,
			Email:    normalized,
			Password: string(hash),
			Role:     models.RoleAdmin,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Fatal("Failed to create admin:", err)
		}
		log.Printf("Created admin account %s", normalized)
	case err != nil:
		log.Fatal("Failed to look up admin:", err)
	default:
		updates := map[string]interface{}{
			"name":     *name,
			"password": string(hash),
			"role":     models.RoleAdmin,
		}
		if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
			log.Fatal("Failed to update admin:", err)
		}
		log.Printf("Updated admin account %s", normalized)
	}
}
