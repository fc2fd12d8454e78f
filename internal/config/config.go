package config

import (
	"os"
	"strings"
)

type Config struct {
	Port        string
	DatabaseURL string

	// CORS: comma-separated list from ALLOWED_ORIGINS; local frontends by default
	AllowedOrigins []string

	// Moderation endpoints are guarded only when this secret is set
	ModeratorJWTSecret string

	// External auth service (identity records live there, not in our tables)
	AuthServiceURL string
	AuthServiceKey string

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadPreset string
}

func Load() *Config {
	return &Config{
		Port:                   getEnv("PORT", "8080"),
		DatabaseURL:            getEnv("DATABASE_URL", "spotshot.db"),
		AllowedOrigins:         parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
		ModeratorJWTSecret:     getEnv("MODERATOR_JWT_SECRET", ""),
		AuthServiceURL:         getEnv("AUTH_SERVICE_URL", ""),
		AuthServiceKey:         getEnv("AUTH_SERVICE_KEY", ""),
		CloudinaryCloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:       getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret:    getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryUploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", ""),
	}
}

// HasCloudinary reports whether upload signing is configured.
func (c *Config) HasCloudinary() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
