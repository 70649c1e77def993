package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds defaults taken from the process environment.
type Env struct {
	Locale   string
	Format   string
	LogLevel string
}

// LoadEnv reads FUNNEL_* defaults from the environment, loading the given
// .env files first when present. Missing files are ignored; variables that are
// already set are never overridden.
func LoadEnv(files ...string) Env {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		// .env is optional; the variables may come from the environment.
		_ = godotenv.Load(existing...)
	}

	env := Env{
		Locale:   os.Getenv("FUNNEL_LOCALE"),
		Format:   os.Getenv("FUNNEL_FORMAT"),
		LogLevel: strings.ToLower(strings.TrimSpace(os.Getenv("FUNNEL_LOG_LEVEL"))),
	}
	if env.LogLevel == "" {
		env.LogLevel = "warn"
	}
	return env
}
