package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Service   Service
	Firestore Firestore
}

// Service holds the HTTP API settings.
type Service struct {
	Environment    string   `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	APIPort        string   `envconfig:"SERVICE_API_PORT" default:"8080"`
	AllowedOrigins []string `envconfig:"SERVICE_ALLOWED_ORIGINS" default:"*"`
}

// Firestore holds the document store settings. CredentialsFile is
// optional; when empty the client falls back to application default
// credentials.
type Firestore struct {
	ProjectID       string `envconfig:"FIRESTORE_PROJECT_ID" required:"true"`
	CredentialsFile string `envconfig:"FIRESTORE_CREDENTIALS_FILE"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
