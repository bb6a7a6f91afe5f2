package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Subjects)
	assert.Equal(t, "console", cfg.Notify.Channel)
	assert.NotEmpty(t, cfg.Admin.Password)
	assert.NotEmpty(t, cfg.Scanner.CaptureDir)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
admin:
  password: "hunter2"
subjects:
  - "Réseaux"
  - "Algorithmique"
notify:
  channel: "none"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "campulse.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "hunter2", cfg.Admin.Password)
	assert.Equal(t, []string{"Réseaux", "Algorithmique"}, cfg.Subjects)
	assert.Equal(t, "none", cfg.Notify.Channel)
}

func TestLoadBadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "campulse.yaml"), []byte("admin: ["), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
