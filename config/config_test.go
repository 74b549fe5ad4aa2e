package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DASHBOARD_CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Seed.Companies)
	assert.Equal(t, 5, cfg.Seed.ProjectsPerCompany)
	assert.Equal(t, "Jonh", cfg.Auth.DemoUsername)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dashboard.yaml")
	body := `
server:
  port: "9090"
seed:
  companies: 2
  projects_per_company: 3
auth:
  token_ttl: 2h
cors:
  allow_origins: ["https://dash.example.com"]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("DASHBOARD_CONFIG_PATH", path)
	t.Setenv("SEED_COMPANIES", "7")
	t.Setenv("REPORT_SCHEDULE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 7, cfg.Seed.Companies, "env overrides file")
	assert.Equal(t, 3, cfg.Seed.ProjectsPerCompany)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"https://dash.example.com"}, cfg.CORS.AllowOrigins)
	assert.Empty(t, cfg.Report.Schedule, "empty REPORT_SCHEDULE disables the report")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("DASHBOARD_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("negative seed", func(t *testing.T) {
		cfg := defaults()
		cfg.Seed.Companies = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("github id without secret", func(t *testing.T) {
		cfg := defaults()
		cfg.Auth.GitHub.ClientID = "abc"
		assert.Error(t, cfg.Validate())
	})

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, defaults().Validate())
	})
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
}
