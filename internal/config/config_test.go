package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	return dir
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("base-url", "", "")
	fs.Duration("timeout", 0, "")
	return fs
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"NEXTRIP_BASE_URL", "NEXTRIP_TIMEOUT", "NEXTRIP_LOG_LEVEL", "NEXTRIP_LOG_FILE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(t.TempDir(), testFlags())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "http://svc.metrotransit.org/nextrip", cfg.BaseURL)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_NoConfigDir(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := writeConfig(t, "base_url: https://example.test/nextrip\ntimeout: 5s\nlog_level: debug\nlog_file: /tmp/nextrip.log\n")

	cfg, err := Load(dir, testFlags())
	require.NoError(t, err)
	assert.Equal(t, Config{
		BaseURL:  "https://example.test/nextrip",
		Timeout:  5 * time.Second,
		LogLevel: "debug",
		LogFile:  "/tmp/nextrip.log",
	}, cfg)
}

func TestLoad_Precedence(t *testing.T) {
	dir := writeConfig(t, "base_url: https://file.test\ntimeout: 5s\n")

	t.Run("env beats file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("NEXTRIP_BASE_URL", "https://env.test")
		cfg, err := Load(dir, testFlags())
		require.NoError(t, err)
		assert.Equal(t, "https://env.test", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("changed flag beats env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("NEXTRIP_BASE_URL", "https://env.test")
		fs := testFlags()
		require.NoError(t, fs.Parse([]string{"--base-url", "https://flag.test", "--timeout", "250ms"}))

		cfg, err := Load(dir, fs)
		require.NoError(t, err)
		assert.Equal(t, "https://flag.test", cfg.BaseURL)
		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	})

	t.Run("unchanged flag does not override file", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load(dir, testFlags())
		require.NoError(t, err)
		assert.Equal(t, "https://file.test", cfg.BaseURL)
	})
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantKey string
	}{
		{name: "bad url", content: "base_url: not a url\n", wantKey: "base_url"},
		{name: "negative timeout", content: "timeout: -1s\n", wantKey: "timeout"},
		{name: "unknown log level", content: "log_level: loud\n", wantKey: "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tt.content), testFlags())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "base_url: [unterminated\n"), testFlags())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
