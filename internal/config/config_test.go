package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, 5, cfg.Notify.LeadMinutes)
	assert.Equal(t, 30, cfg.Notify.CheckIntervalSec)
	assert.False(t, cfg.Log.UseCaseEvents)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"db_path: /tmp/r.db\nnotify:\n  lead_minutes: 10\nlog:\n  use_case_events: true\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/r.db", cfg.DBPath)
	assert.Equal(t, 10, cfg.Notify.LeadMinutes)
	assert.Equal(t, 30, cfg.Notify.CheckIntervalSec)
	assert.True(t, cfg.Log.UseCaseEvents)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notify:\n  lead_minutes: 10\n"), 0o600))
	t.Setenv("ROUTINELY_NOTIFY_LEAD_MINUTES", "15")
	t.Setenv("ROUTINELY_DB_PATH", "/tmp/env.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Notify.LeadMinutes)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
}

func TestLoad_RejectsInvalidLead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notify:\n  lead_minutes: -3\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notify: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
