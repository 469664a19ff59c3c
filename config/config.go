package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded once at startup.
type Config struct {
	ServerPort  string
	DatabaseDSN string
	CORSOrigins string

	JWTSecret         string
	AccessTokenTTLMin int

	FirstAdminEmail    string
	FirstAdminPassword string
	FirstAdminName     string

	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string
}

// LoadConfig reads configuration from the environment. A .env file is loaded
// first outside of prod so local runs work without exporting anything.
func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found, using system environment variables")
		}
	}

	cfg := Config{
		ServerPort:  getEnv("SERVER_PORT", ":8000"),
		DatabaseDSN: getEnv("DATABASE_DSN", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		JWTSecret:         getEnv("JWT_SECRET", "defaultSecret"),
		AccessTokenTTLMin: getEnvInt("ACCESS_TOKEN_TTL_MIN", 60),

		FirstAdminEmail:    getEnv("FIRST_ADMIN_EMAIL", "admin@example.com"),
		FirstAdminPassword: getEnv("FIRST_ADMIN_PASSWORD", "ChangeMeNow!123"),
		FirstAdminName:     getEnv("FIRST_ADMIN_NAME", "Admin"),

		KafkaBroker:   getEnv("KAFKA_BROKER", ""),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "audit-events"),
		KafkaUsername: getEnv("KAFKA_USERNAME", ""),
		KafkaPassword: getEnv("KAFKA_PASSWORD", ""),
	}

	if cfg.JWTSecret == "defaultSecret" {
		log.Println("Warning: using default JWT_SECRET, update it in your environment")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid integer for %s: %v", key, err)
		return defaultValue
	}
	return intValue
}
