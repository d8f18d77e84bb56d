// Load envs from .env, override with the process environment, apply
// defaults, and fail fast on anything required.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string

	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             os.Getenv("PORT"),
		DatabaseDSN:      os.Getenv("DATABASE_DSN"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:    os.Getenv("STORAGE_BUCKET"),
		StorageUseSSL:    os.Getenv("STORAGE_USE_SSL") != "false",
	}

	// Defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StorageBucket == "" {
		cfg.StorageBucket = "resumes"
	}

	// Required
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if cfg.StorageEndpoint == "" {
		log.Fatal("STORAGE_ENDPOINT is required")
	}
	if cfg.StorageAccessKey == "" || cfg.StorageSecretKey == "" {
		log.Fatal("STORAGE_ACCESS_KEY and STORAGE_SECRET_KEY are required")
	}

	return cfg
}
