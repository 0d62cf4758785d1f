package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "8080"
	DefaultTokenExpiryMin = 60
	DefaultBcryptCost     = 10
)

type Config struct {
	Env            string
	Port           string
	DBURL          string
	TokenSecret    string
	TokenExpiryMin int
	BcryptCost     int
	CookieSecure   bool
}

func Load() *Config {
	env := getEnv("ENV", "development")

	// Values from the env file never override variables already set in the
	// environment.
	if err := godotenv.Load(envFile(env)); err != nil {
		log.Printf("No env file for %s environment, relying on environment variables", env)
	}

	return &Config{
		Env:            env,
		Port:           getEnv("PORT", DefaultPort),
		DBURL:          mustGetEnv("DB_URL"),
		TokenSecret:    mustGetEnv("TOKEN_SECRET"),
		TokenExpiryMin: getEnvAsInt("TOKEN_EXPIRY", DefaultTokenExpiryMin),
		BcryptCost:     getEnvAsInt("BCRYPT_COST", DefaultBcryptCost),
		CookieSecure:   getEnvAsBool("COOKIE_SECURE", false),
	}
}

func envFile(env string) string {
	switch env {
	case "production":
		return "config/.env.prod"
	case "test":
		return "config/.env.test"
	default:
		return "config/.env.dev"
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
	log.Fatalf("Missing required config: %s", key)
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

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
