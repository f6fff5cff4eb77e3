package main

import (
	"log"
	"os"
	"time"

	"ai-videosummary-be/internal/model"
	"ai-videosummary-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Demo accounts for local development. All three share the password
// "password".
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Seeding demo accounts\n")

	hashBytes, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash password: %v", err)
	}
	hash := string(hashBytes)
	now := time.Now()

	users := []model.User{
		{
			Id:                  uuid.New(),
			Email:               "user@example.com",
			PasswordHash:        &hash,
			Name:                "Demo User",
			Role:                "user",
			IsPremium:           false,
			DailyUsage:          2,
			DailyUsageLastReset: now,
			TotalUsage:          15,
		},
		{
			Id:                  uuid.New(),
			Email:               "premium@example.com",
			PasswordHash:        &hash,
			Name:                "Premium User",
			Role:                "user",
			IsPremium:           true,
			DailyUsageLastReset: now,
			TotalUsage:          142,
		},
		{
			Id:                  uuid.New(),
			Email:               "admin@example.com",
			PasswordHash:        &hash,
			Name:                "Admin",
			Role:                "admin",
			IsPremium:           true,
			DailyUsageLastReset: now,
		},
	}

	for _, u := range users {
		var existing model.User
		err := db.Where("email = ?", u.Email).First(&existing).Error
		if err == nil {
			color.Yellow("Skipped %s (already present)", u.Email)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			color.Red("Failed to check %s: %v", u.Email, err)
			continue
		}

		if err := db.Create(&u).Error; err != nil {
			color.Red("Failed to create %s: %v", u.Email, err)
			continue
		}
		color.Green("Created %s (%s)", u.Email, u.Role)
	}

	color.Cyan("\n✅ Done")
}
