package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "folio.log")
	l, err := New(path, "DEBUG")
	require.NoError(t, err)

	l.Debug("fetch ok", zap.String("endpoint", "/api/v1/about/"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "fetch ok", entry["message"])
	assert.Equal(t, "DEBUG", entry["severity"])
	assert.Equal(t, "/api/v1/about/", entry["endpoint"])
	assert.Contains(t, entry, "timestamp")
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")
	l, err := New(path, "chatty")
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("shown")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewOrNop(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	l := NewOrNop(filepath.Join(blocker, "sub", "folio.log"), "info")
	require.NotNil(t, l)
	l.Info("discarded")
}
