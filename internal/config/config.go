package config

import "os"

// Config carries process configuration, read from the environment once
// at startup.
type Config struct {
	Port          string
	AllowedOrigin string
}

// Load reads the environment with local-development defaults.
func Load() Config {
	return Config{
		Port:          getenv("PORT", "3001"),
		AllowedOrigin: getenv("ALLOWED_ORIGIN", "*"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
