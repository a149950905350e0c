package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	GitHub   GitHubConfig
	Session  SessionConfig
	API      APIConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	// Driver is either "sqlite3" or "postgres".
	Driver string
	Path   string
	URL    string
}

type GitHubConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	// Token is optional; unauthenticated repository listing is rate limited to 60 requests/hour.
	Token  string
	APIURL string
}

type SessionConfig struct {
	Secret string
}

// APIConfig points the draft submitter at the project creation endpoint.
type APIConfig struct {
	BaseURL string
}

type LogConfig struct {
	Level string
}

// WorkerConfig controls the pending user promotion workers. Interval is in seconds.
type WorkerConfig struct {
	PromotionWorkers  int
	PromotionInterval int
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port := getEnv("PORT", "8080")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         port,
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "sqlite3"),
			Path:   getEnv("DB_PATH", "./showcase.db"),
			URL:    getEnv("DATABASE_URL", ""),
		},
		GitHub: GitHubConfig{
			ClientID:     getEnv("GITHUB_CLIENT_ID", ""),
			ClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
			CallbackURL:  getEnv("GITHUB_CALLBACK_URL", ""),
			Token:        getEnv("GITHUB_TOKEN", ""),
			APIURL:       getEnv("GITHUB_API_URL", ""),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "default-secret-key"),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:"+port),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Worker: WorkerConfig{
			PromotionWorkers:  getEnvAsInt("PROMOTION_WORKERS", 1),
			PromotionInterval: getEnvAsInt("PROMOTION_INTERVAL", 60),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
