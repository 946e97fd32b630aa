package config

import (
	"errors"
	"os"
	"strings"
)

// DefaultBackendURL is the hosted data store project. Overridable via
// BACKEND_URL, mainly so tests can point the app at a local fake.
const DefaultBackendURL = "https://zdbwnxnikspdexfpuhad.supabase.co"

// Config holds all process-wide settings. Built once in main and passed down;
// nothing reads the environment after startup.
type Config struct {
	Port          string
	BackendURL    string
	BackendKey    string
	SessionSecret string
	Env           string
	Debug         bool
}

// Load reads configuration from environment with sensible defaults.
// SESSION_SECRET and SUPABASE_KEY have no defaults: the app must not start
// without a signing secret or a data store credential.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		BackendURL:    strings.TrimRight(getEnv("BACKEND_URL", DefaultBackendURL), "/"),
		BackendKey:    os.Getenv("SUPABASE_KEY"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Env:           getEnv("APP_ENV", "development"),
		Debug:         os.Getenv("DEBUG") == "1",
	}

	var missing []string
	if cfg.SessionSecret == "" {
		missing = append(missing, "SESSION_SECRET")
	}
	if cfg.BackendKey == "" {
		missing = append(missing, "SUPABASE_KEY")
	}
	if len(missing) > 0 {
		return Config{}, errors.New("missing required environment variables: " + strings.Join(missing, ", "))
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
