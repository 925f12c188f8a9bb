package config

import (
	"encoding/json"
	"os"
	"time"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals are
// given in seconds. Pointer fields distinguish "absent" from zero so a JSON
// file only overrides what it actually sets.
type jsonConfig struct {
	ServerBaseURL   *string      `json:"server_base_url"`
	DataDir         *string      `json:"data_dir"`
	PushEnabled     *bool        `json:"push_enabled"`
	PushPollSeconds *int         `json:"push_poll_seconds"`
	PushPromptMS    *int         `json:"push_prompt_ms"`
	Assets          AssetsConfig `json:"assets"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// No flag means no JSON source. Read or unmarshal errors panic: a config file
// that was asked for but cannot be used is not recoverable.
func parseJSON(cfg *Config) {
	path := jsonConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.PushEnabled != nil {
		cfg.PushEnabled = *jc.PushEnabled
	}
	if jc.PushPollSeconds != nil {
		cfg.PushPollInterval = time.Duration(*jc.PushPollSeconds) * time.Second
	}
	if jc.PushPromptMS != nil {
		cfg.PushPromptDelay = time.Duration(*jc.PushPromptMS) * time.Millisecond
	}

	if jc.Assets.AccountID != "" {
		cfg.Assets.AccountID = jc.Assets.AccountID
	}
	if jc.Assets.Endpoint != "" {
		cfg.Assets.Endpoint = jc.Assets.Endpoint
	}
	if jc.Assets.Region != "" {
		cfg.Assets.Region = jc.Assets.Region
	}
	if jc.Assets.Bucket != "" {
		cfg.Assets.Bucket = jc.Assets.Bucket
	}
	if jc.Assets.AccessKeyID != "" {
		cfg.Assets.AccessKeyID = jc.Assets.AccessKeyID
	}
	if jc.Assets.SecretAccessKey != "" {
		cfg.Assets.SecretAccessKey = jc.Assets.SecretAccessKey
	}
}
