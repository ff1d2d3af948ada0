package config

import (
	"fmt"
	"log"
	"os"

	"knowledgehub-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the live article store (Postgres) and migrates the relational
// schema.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "knowledgehub"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Article{},
		&models.Media{},
		&models.Comment{},
		&models.CommentLike{},
		&models.ArticleLike{},
		&models.Favorite{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
