// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds the application configuration read from the environment.
// DatabaseURL and GeminiAPIKey may be empty; features depending on them
// degrade instead of failing startup.
type Config struct {
	Port         string `validate:"required,numeric"`
	DatabaseURL  string
	GeminiAPIKey string

	// Contact details substituted into anonymized documents.
	CompanyPhone string `validate:"required"`
	CompanyEmail string `validate:"required,email"`

	// PhotoPath overrides the bundled placeholder logo.
	PhotoPath string
}

// Load reads configuration from environment variables, applying defaults
// for optional values.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		CompanyPhone: getEnv("COMPANY_PHONE", "01 02 03 04 05"),
		CompanyEmail: getEnv("COMPANY_EMAIL", "contact@example.com"),
		PhotoPath:    os.Getenv("PHOTO_PATH"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.PhotoPath != "" {
		if _, err := os.Stat(c.PhotoPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: photo file not found: %s", c.PhotoPath)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
