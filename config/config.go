package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL          string
	RedisAddress   string
	BearerToken    string
	ListenAddress  string
	UploadDir      string
	AllowedOrigins []string
	DoctorEmail    string
	DoctorPassword string
}

// Load reads configuration from environment variables. DB_URL, REDIS_URL and
// BEARER_TOKEN are required; everything else has a sensible default.
func Load() (*AppConfig, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	bearerToken := os.Getenv("BEARER_TOKEN")
	if bearerToken == "" {
		return nil, errors.New("missing BEARER_TOKEN environment variable")
	}

	return &AppConfig{
		DBURL:          dbURL,
		RedisAddress:   redisAddress,
		BearerToken:    bearerToken,
		ListenAddress:  getEnv("LISTEN_ADDR", ":4000"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads/patient_images"),
		AllowedOrigins: splitEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		DoctorEmail:    os.Getenv("DOCTOR_EMAIL"),
		DoctorPassword: os.Getenv("DOCTOR_PASSWORD"),
	}, nil
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

func getEnv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func splitEnv(name, fallback string) []string {
	raw := getEnv(name, fallback)
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
