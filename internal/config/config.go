// Package config loads the client's runtime settings. Sources are layered:
// built-in defaults, then a JSON file (-c/-config), then environment
// variables (including a .env file), then command-line flags. Later sources
// override earlier ones.
package config

import "time"

// AssetsConfig addresses the S3-compatible asset host used for resume
// uploads. AccountID alone is enough; endpoint and bucket are derived from
// it when unset.
type AssetsConfig struct {
	AccountID       string `env:"ACCOUNT_ID"        json:"account_id"`
	Endpoint        string `env:"ENDPOINT"          json:"endpoint"`
	Region          string `env:"REGION"            json:"region"`
	Bucket          string `env:"BUCKET"            json:"bucket"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"     json:"access_key_id"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY" json:"secret_access_key"`
}

// Config holds runtime settings for the hirelink client.
type Config struct {
	// ServerBaseURL is the portal's REST base URL.
	ServerBaseURL string `env:"SERVER_BASE_URL"`

	// DataDir holds the local settings database.
	DataDir string `env:"DATA_DIR"`

	// PushEnabled turns the push-notification bootstrap on or off.
	PushEnabled bool `env:"PUSH_ENABLED"`

	// PushPollInterval is how often the delivery worker polls.
	PushPollInterval time.Duration `env:"PUSH_POLL_INTERVAL"`

	// PushPromptDelay is the pause before the one-time permission prompt,
	// so the prompt never races the first paint.
	PushPromptDelay time.Duration `env:"PUSH_PROMPT_DELAY"`

	// Assets configures the asset host.
	Assets AssetsConfig `envPrefix:"ASSETS_"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DataDir = "."
	c.PushEnabled = true
	c.PushPollInterval = 30 * time.Second
	c.PushPromptDelay = 3 * time.Second
	c.Assets.Region = "us-east-1"
}

// LoadConfig constructs a Config by applying every source in order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
