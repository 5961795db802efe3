package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	Environment      string
	FirestoreProject string
	CredentialsFile  string
	CredentialsJSON  string
	JWTSecret        string
	JWTExpiry        int64
	StripeSecretKey  string
	StorageBucket    string
	PublicBaseURL    string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		FirestoreProject: getEnv("FIRESTORE_PROJECT_ID", ""),
		CredentialsFile:  getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		CredentialsJSON:  getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:        getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours
		StripeSecretKey:  getEnv("STRIPE_SECRET_KEY", ""),
		StorageBucket:    getEnv("STORAGE_BUCKET", ""),
		PublicBaseURL:    getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
