package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerBaseURL)
	assert.Equal(t, ".", c.DataDir)
	assert.True(t, c.PushEnabled)
	assert.Equal(t, 30*time.Second, c.PushPollInterval)
	assert.Equal(t, 3*time.Second, c.PushPromptDelay)
	assert.Equal(t, "us-east-1", c.Assets.Region)
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON_OverlaysOnlyGivenFields(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"server_base_url":   "http://portal.example:9000",
		"push_poll_seconds": 10,
		"assets":            map[string]any{"account_id": "acme"},
	})
	os.Args = []string{"testbin", "-config", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, "http://portal.example:9000", cfg.ServerBaseURL)
	assert.Equal(t, 10*time.Second, cfg.PushPollInterval)
	assert.Equal(t, "acme", cfg.Assets.AccountID)
	// Untouched fields keep their defaults.
	assert.Equal(t, ".", cfg.DataDir)
	assert.True(t, cfg.PushEnabled)
}

func Test_parseJSON_NoFlagNoChanges(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerBaseURL)
}

func Test_parseEnv_PrefixedVariablesWin(t *testing.T) {
	t.Setenv("HIRELINK_SERVER_BASE_URL", "http://env.example")
	t.Setenv("HIRELINK_PUSH_POLL_INTERVAL", "45s")
	t.Setenv("HIRELINK_ASSETS_ACCOUNT_ID", "env-account")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://env.example", cfg.ServerBaseURL)
	assert.Equal(t, 45*time.Second, cfg.PushPollInterval)
	assert.Equal(t, "env-account", cfg.Assets.AccountID)
	assert.Equal(t, ".", cfg.DataDir)
}

func Test_parseFlags_OverridesEarlierSources(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-a", "http://flag.example", "-i", "5"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://flag.example", cfg.ServerBaseURL)
	assert.Equal(t, 5*time.Second, cfg.PushPollInterval)
}

func Test_filterArgs(t *testing.T) {
	args := []string{"-a", "http://x", "-unknown", "zzz", "--config=conf.json", "-i", "7"}

	got := filterArgs(args, []string{"-a", "-i"})
	assert.Equal(t, []string{"-a", "http://x", "-i", "7"}, got)

	got = filterArgs(args, []string{"--config"})
	assert.Equal(t, []string{"--config=conf.json"}, got)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, ".", cfg.DataDir)
}
