package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cruddy_config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.Seed)
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `
addr: ":9090"
seed:
  - title: "Water plants"
    description: "front porch"
  - title: "Pay bill"
    status: "in progress"
    due_date: "7/4/2026"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	require.Len(t, cfg.Seed, 2)
	assert.Equal(t, "Water plants", cfg.Seed[0].Title)
	assert.Equal(t, "front porch", cfg.Seed[0].Description)
	assert.Equal(t, "in progress", cfg.Seed[1].Status)
	assert.Equal(t, "7/4/2026", cfg.Seed[1].DueDate)
}

func TestLoad_DefaultsFillUnsetFields(t *testing.T) {
	path := writeTempConfig(t, `
seed:
  - title: "Only task"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	require.Len(t, cfg.Seed, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeTempConfig(t, "addr: [:::")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CRUDDY_ADDR", ":7070")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, ":7070", cfg.Addr)
}

func TestApplyEnv_UnsetKeepsExisting(t *testing.T) {
	t.Setenv("CRUDDY_ADDR", "")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, ":8080", cfg.Addr)
}
