// Package config reads server configuration from environment variables.
// cmd binaries load a .env file first via godotenv, so a local .env and
// real environment variables are interchangeable.
package config

import (
	"os"
	"path/filepath"
)

// Config holds the runtime options for the server, worker, and seeder.
type Config struct {
	// Addr is the listen address (host:port).
	Addr string

	// DataDir is where the JSON collection files live when the file
	// store is used.
	DataDir string

	// DatabaseDSN selects the Postgres store when non-empty.
	DatabaseDSN string

	// AMQPURL selects the RabbitMQ event publisher when non-empty.
	AMQPURL string

	// StaticDir enables static file serving with SPA fallback when
	// non-empty.
	StaticDir string
}

// Load builds a Config from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Addr:        getenv("ADDR", ":8080"),
		DataDir:     getenv("DATA_DIR", "data"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		AMQPURL:     os.Getenv("AMQP_URL"),
		StaticDir:   os.Getenv("STATIC_DIR"),
	}
}

// CampaignsFile is the path of the campaigns collection file.
func (c *Config) CampaignsFile() string {
	return filepath.Join(c.DataDir, "campaigns.json")
}

// UsersFile is the path of the users collection file.
func (c *Config) UsersFile() string {
	return filepath.Join(c.DataDir, "users.json")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
