package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI         string
	MongoDB          string
	Port             string
	JWTSecret        string
	WebhookTokenHash string
	ClerkSecretKey   string
	ClerkAPIURL      string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func Load() Config {
	// .env values take precedence over the ambient environment
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return Config{
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:          getEnv("MONGO_DB", "giveinstead"),
		Port:             getEnv("PORT", "3000"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		WebhookTokenHash: os.Getenv("WEBHOOK_TOKEN_HASH"),
		ClerkSecretKey:   os.Getenv("CLERK_SECRET_KEY"),
		ClerkAPIURL:      getEnv("CLERK_API_URL", "https://api.clerk.com/v1"),
	}
}
