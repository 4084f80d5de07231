package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
port = 5432
user = "postgres"
password = "postgres"
dbname = "arena_booking"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "INR", cfg.Payments.Currency)
	assert.False(t, cfg.Payments.Enabled)
	assert.False(t, cfg.SMS.Enabled)
}

func TestLoad_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	dsn := cfg.Database.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=arena_booking")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestLoad_PaymentsRequireCredentials(t *testing.T) {
	content := minimalConfig + `
[payments]
enabled = true
base_url = "https://api.razorpay.com/v1"
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_SMSRequiresCredentials(t *testing.T) {
	content := minimalConfig + `
[sms]
enabled = true
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingDatabase(t *testing.T) {
	_, err := Load(writeConfig(t, "[server]\nhttp_port = 8080\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrLoadConfig)
}
