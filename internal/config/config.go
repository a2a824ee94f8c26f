// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the gateway. It is built once
// at startup and passed by reference into every component that needs it —
// there are no ambient global lookups.
type Config struct {
	Port   string
	AppEnv string

	// Google Drive service account. File takes precedence when it names an
	// existing file; otherwise JSON is parsed as the inline secret document.
	ServiceAccountFile string
	ServiceAccountJSON string

	// Root folder ids for the three asset kinds.
	ProfileFolderID     string
	ProductsFolderID    string
	SubproductsFolderID string

	// Secret used to verify bearer tokens issued by the upstream backend.
	JWTSecret string

	AllowedOrigins    []string
	AllowedExtensions []string
}

// Load reads configuration from a .env file (if present) and environment
// variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		ServiceAccountFile: getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", "service-account.json"),
		ServiceAccountJSON: os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"),

		ProfileFolderID:     os.Getenv("PROFILE_FOLDER_ID"),
		ProductsFolderID:    os.Getenv("PRODUCTS_FOLDER_ID"),
		SubproductsFolderID: os.Getenv("SUBPRODUCTS_FOLDER_ID"),

		JWTSecret: getEnv("JWT_SECRET", "change_me_in_production"),

		AllowedOrigins:    getEnvList("ALLOWED_ORIGINS", "*"),
		AllowedExtensions: getEnvList("ALLOWED_EXTENSIONS", ".jpg,.jpeg,.png,.webp,.gif"),
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvList splits a comma-separated variable, trimming whitespace and
// dropping empty items.
func getEnvList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
