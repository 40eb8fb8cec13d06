package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("ANALYSIS_DEFAULT_ROLE", "DEVOPS_ENGINEER")
	t.Setenv("REPORTS_BACKEND", "minio")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "DEVOPS_ENGINEER", cfg.Analysis.DefaultRole)
	assert.Equal(t, ReportsBackendMinIO, cfg.Reports.Backend)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "PORT", "APP_VERSION", "ANALYSIS_DEFAULT_ROLE", "ANALYSIS_MAX_UPLOAD_BYTES", "REPORTS_BACKEND", "REPORTS_DIR", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.False(t, cfg.Database.Enabled())
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "FULLSTACK_DEVELOPER", cfg.Analysis.DefaultRole)
	assert.Equal(t, 10*1024*1024, cfg.Analysis.MaxUploadBytes)
	assert.Equal(t, ReportsBackendFS, cfg.Reports.Backend)
	assert.Equal(t, "results", cfg.Reports.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	t.Setenv(key, "")
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	t.Setenv(key, "")
	assert.Equal(t, 10, getEnvInt(key, 10))
}
