package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var SecretKey []byte

type Config struct {
	Port          string
	DatabaseURL   string
	MigrationsDir string
	UploadDir     string
	PublicBaseURL string
}

func Init() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT secret key not set")
	}
	SecretKey = []byte(secret)

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	return &Config{
		Port:          getEnv("PORT", ":8080"),
		DatabaseURL:   dbURL,
		MigrationsDir: getEnv("MIGRATIONS_DIR", "database/migrations"),
		UploadDir:     getEnv("UPLOAD_DIR", "storage/uploads"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
