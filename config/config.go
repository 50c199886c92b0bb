package config

import (
	"log"
	"os"
	"strconv"

	"github.com/Royal-dudy99/SwiftBooks18/pkg/constant"
	"github.com/joho/godotenv"
)

type Config struct {
	Env                 string
	Port                string
	DBURL               string
	TokenSecret         string
	TokenExpiryMin      int
	ResetTokenExpiryMin int
	AppBaseURL          string
	SMTPAddr            string
	SMTPFrom            string
}

func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Env:                 getEnv("ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		DBURL:               getEnv("DB_URL", ""),
		TokenSecret:         mustGetEnv("TOKEN_SECRET"),
		TokenExpiryMin:      getEnvAsInt("TOKEN_EXPIRY_MIN", constant.DefaultTokenExpiryMin),
		ResetTokenExpiryMin: getEnvAsInt("RESET_TOKEN_EXPIRY_MIN", constant.DefaultResetTokenExpiryMin),
		AppBaseURL:          getEnv("APP_BASE_URL", "http://localhost:3000"),
		SMTPAddr:            getEnv("SMTP_ADDR", ""),
		SMTPFrom:            getEnv("SMTP_FROM", "no-reply@swiftbooks.local"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
