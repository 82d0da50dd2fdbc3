package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Console: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", zap.String("stage", "route"))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "route")
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Console: &buf})
	require.NoError(t, err)

	log.Debug("resolving")
	assert.Contains(t, buf.String(), "resolving")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nextrip.log")
	log, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)

	log.Info("route resolved", zap.String("route_id", "901"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "route resolved", entry["message"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "901", entry["route_id"])
}

func TestNew_NoOutputsIsNop(t *testing.T) {
	log, err := New(Options{})
	require.NoError(t, err)
	log.Error("dropped")
}
