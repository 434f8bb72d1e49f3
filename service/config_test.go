package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bedaie/bedaie-web/internal/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"ENVIRONMENT", "PORT", "BASE_URL", "APP_NAME", "ASSETS_URL", "DB_PATH",
	"SESSION_SECRET", "JOBS_ENABLED", "EMAIL_PROVIDER", "EMAIL_FROM",
	"EMAIL_REPLY_TO", "POSTMARK_SERVER_TOKEN", "POSTMARK_ACCOUNT_TOKEN",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD",
}

// clearConfigEnv unsets every config variable for the duration of the test
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "8000", config.Port)
	assert.Equal(t, "http://localhost:8000", config.BaseURL)
	assert.Equal(t, "BeDaie", config.AppName)
	assert.True(t, config.JobsEnabled)
	assert.Equal(t, email.ProviderLog, config.Email.Provider)
	assert.Equal(t, 587, config.Email.SMTPPort)
	assert.False(t, config.IsProduction())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_URL", "https://shop.bedaie.com/")
	t.Setenv("JOBS_ENABLED", "false")
	t.Setenv("EMAIL_PROVIDER", "smtp")
	t.Setenv("SMTP_HOST", "mail.bedaie.com")
	t.Setenv("SMTP_PORT", "2525")

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", config.Port)
	assert.Equal(t, "https://shop.bedaie.com", config.BaseURL)
	assert.False(t, config.JobsEnabled)
	assert.Equal(t, "smtp", config.Email.Provider)
	assert.Equal(t, "mail.bedaie.com", config.Email.SMTPHost)
	assert.Equal(t, 2525, config.Email.SMTPPort)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_NAME=Kedai Aisyah\nPORT=7000\n"), 0o600))
	t.Setenv("PORT", "7100")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Kedai Aisyah", config.AppName)
	assert.Equal(t, "7100", config.Port, "environment wins over the file")
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)

	t.Setenv("SESSION_SECRET", "a-real-secret-value-for-production")
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.True(t, config.IsProduction())
}
