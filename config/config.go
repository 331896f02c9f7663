package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dwiprasetyo/auth-session-service/pkg/constant"
)

type Config struct {
	Env              string
	Port             string
	LogLevel         string
	DBURL            string
	JWTSecret        string
	AccessExpiryMin  int
	RefreshExpiryMin int
	MaxLoginAttempts int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:              getEnv("ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DBURL:            mustGetEnv("DB_URL"),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		AccessExpiryMin:  getEnvAsInt("ACCESS_TOKEN_EXPIRY", constant.DefaultAccessExpiryMin),
		RefreshExpiryMin: getEnvAsInt("REFRESH_TOKEN_EXPIRY", constant.DefaultRefreshExpiryMin),
		MaxLoginAttempts: getEnvAsInt("MAX_LOGIN_ATTEMPTS", constant.DefaultMaxLoginAttempts),
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
