package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Addr            string
	LogLevel        string
	StoreBackend    string
	SQLiteDSN       string
	DemoToken       string
	CORSAllowOrigin string
	ShutdownTimeout time.Duration
}

// Load reads the environment, after applying an optional .env file from the
// working directory. Variables already set win over the file.
func Load() Config {
	_ = godotenv.Load()

	port := getenv("PORT", "3000")
	addr := getenv("ADDR", ":"+port)

	return Config{
		Port:            port,
		Addr:            addr,
		LogLevel:        strings.ToLower(strings.TrimSpace(getenv("LOG_LEVEL", "info"))),
		StoreBackend:    getenv("STORE_BACKEND", "memory"),
		SQLiteDSN:       getenv("SQLITE_DSN", ":memory:"),
		DemoToken:       getenv("DEMO_TOKEN", "demo-token"),
		CORSAllowOrigin: getenv("CORS_ALLOW_ORIGIN", "*"),
		ShutdownTimeout: duration(getenv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func duration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
