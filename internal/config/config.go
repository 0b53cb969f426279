// Package config reads runtime configuration from the environment, loading
// a .env file first when one is present.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup. AdminPassword may be
// empty, in which case the binary generates one and prints it once.
// JWTSecret may be empty, in which case a generated secret is persisted in
// the database so tokens survive restarts.
type Config struct {
	Addr    string
	DBPath  string
	LogPath string

	JWTSecret     string
	AdminUsername string
	AdminPassword string
}

// Load reads the configuration. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:          getenv("ADDR", ":8080"),
		DBPath:        getenv("DB_PATH", "lostfound.sqlite3"),
		LogPath:       os.Getenv("LOG_PATH"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
