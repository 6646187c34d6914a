package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local use.
type Config struct {
	AppName  string
	Env      string // development, production
	LogLevel string // optional override; empty means derive from Env

	// Storage
	StoreBackend string // file, memory, sqlite, redis
	DataDir      string
	SQLitePath   string

	// Redis (only used when StoreBackend is redis)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".quadro"
	}
	return filepath.Join(home, ".quadro")
}

// Load loads configuration from environment variables
func Load() *Config {
	dataDir := getenv("DATA_DIR", defaultDataDir())
	return &Config{
		AppName:  getenv("APP_NAME", "quadro"),
		Env:      getenv("APP_ENV", "development"),
		LogLevel: getenv("LOG_LEVEL", ""),

		StoreBackend: getenv("STORE_BACKEND", "file"),
		DataDir:      dataDir,
		SQLitePath:   getenv("SQLITE_PATH", filepath.Join(dataDir, "quadro.db")),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),
	}
}
