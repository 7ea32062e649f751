package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alfex4936/mapsrpc/internal/record"
	"github.com/Alfex4936/mapsrpc/internal/value"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// isolate keeps a developer's ./config.yaml or CONFIG_PATH out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 20*time.Second, cfg.Fetch.Timeout)

	l, err := cfg.Decoder.Layout()
	require.NoError(t, err)
	assert.Equal(t, record.DefaultLayout(), l)
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	isolate(t)
	path := writeYAML(t, `
server:
  port: 9090
log:
  level: debug
  format: json
decoder:
  rating: "12"
  coords: "9/1"
  max_depth: 6
`)
	t.Setenv("DECODER_ID", "0/3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)

	l, err := cfg.Decoder.Layout()
	require.NoError(t, err)
	assert.Equal(t, value.P(12), l.Rating)
	assert.Equal(t, value.P(9, 1), l.Coords)
	assert.Equal(t, value.P(0, 3), l.ID)
	assert.Equal(t, 6, l.MaxRootDepth)
	assert.Equal(t, value.P(13, 0), l.Category, "unset keys keep their defaults")
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CONFIG_PATH", writeYAML(t, "server:\n  port: 7070\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)

	bad := *cfg
	bad.Log.Level = "verbose"
	bad.Decoder.Rating = "14//2"
	bad.Decoder.IDWindowFrom = 30
	err = bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "malformed path")
	assert.Contains(t, err.Error(), "id window")

	bad = *cfg
	bad.Server.Port = 0
	require.ErrorContains(t, bad.Validate(), "server.port")
}
