package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr          string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration

	// CORSAllowedOrigins lists the origins browsers may call from; "*" allows any.
	CORSAllowedOrigins []string

	LogLevel  string
	LogPretty bool

	// SeedFile, when set, replaces the built-in seed notes.
	SeedFile string
}

func Load() Config {
	return Config{
		HTTPAddr:           getenv("HTTP_ADDR", ":3001"),
		ReadHeaderTimeout:  getenvDuration("READ_HEADER_TIMEOUT", 5*time.Second),
		ShutdownTimeout:    getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSAllowedOrigins: getenvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		LogPretty:          getenvBool("LOG_PRETTY", false),
		SeedFile:           getenv("SEED_FILE", ""),
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

// getenvList splits a comma-separated value, dropping blank entries.
func getenvList(key string, def []string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
