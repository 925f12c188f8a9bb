package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables, loading a .env file
// first if one exists in the working directory. Every variable is prefixed
// with HIRELINK_ (e.g. HIRELINK_SERVER_BASE_URL, HIRELINK_ASSETS_ACCOUNT_ID).
func parseEnv(cfg *Config) {
	// A missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "HIRELINK_"}); err != nil {
		panic(err)
	}
}
