package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgewave/hlsgate/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADDRESS", "")
	t.Setenv("HLS_ROOT", "")
	t.Setenv("EDGE_SIGNING_SECRET", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg := config.Load()
	assert.Equal(t, "0.0.0.0:8080", cfg.Address)
	assert.Equal(t, "/var/lib/hlsgate/live", cfg.HLSRoot)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.SigningSecret)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ADDRESS", "127.0.0.1:9090")
	t.Setenv("HLS_ROOT", "/srv/hls")
	t.Setenv("EDGE_SIGNING_SECRET", "s3cr3t")

	cfg := config.Load()
	assert.Equal(t, "127.0.0.1:9090", cfg.Address)
	assert.Equal(t, "/srv/hls", cfg.HLSRoot)
	assert.Equal(t, "s3cr3t", cfg.SigningSecret)
}

func TestValidate(t *testing.T) {
	root := t.TempDir()

	cfg := config.Config{SigningSecret: "s3cr3t", HLSRoot: root}
	assert.NoError(t, cfg.Validate())

	missingSecret := config.Config{HLSRoot: root}
	assert.ErrorContains(t, missingSecret.Validate(), "EDGE_SIGNING_SECRET")

	missingRoot := config.Config{SigningSecret: "s3cr3t", HLSRoot: filepath.Join(root, "nope")}
	assert.ErrorContains(t, missingRoot.Validate(), "does not exist")

	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	notADir := config.Config{SigningSecret: "s3cr3t", HLSRoot: file}
	assert.ErrorContains(t, notADir.Validate(), "not a directory")
}
