package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from the environment.
type Config struct {
	AppHost     string
	AppPort     string
	FrontendURL string

	DBHost     string
	DBPort     string
	DBDatabase string
	DBUsername string
	DBPassword string
	DBSSLMode  string

	// PublicKeyURL is the identity service endpoint that serves the RSA
	// public key used to verify bearer tokens.
	PublicKeyURL string

	// Payment gateway settings.
	PaymentBaseURL   string
	PaymentSecretKey string
}

// Load reads configuration from environment variables, loading a .env file
// first when one is present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppHost:     os.Getenv("APP_HOST"),
		AppPort:     os.Getenv("APP_PORT"),
		FrontendURL: os.Getenv("FRONTEND_URL"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBDatabase: os.Getenv("DB_DATABASE"),
		DBUsername: os.Getenv("DB_USERNAME"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBSSLMode:  os.Getenv("DB_SSLMODE"),

		PublicKeyURL: os.Getenv("PUBLIC_KEY_URL"),

		PaymentBaseURL:   os.Getenv("PAYMENT_BASE_URL"),
		PaymentSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "3000"
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}

	return cfg
}

// Addr returns the host:port pair the HTTP server listens on.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUsername, c.DBPassword, c.DBDatabase, c.DBSSLMode)
}
