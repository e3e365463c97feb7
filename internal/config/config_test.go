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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaultsAndValues(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "booking"
password = "secret"
dbname = "booking"

[booking]
dates_per_day = 3
days_deadline = 2
timezone = "Europe/Berlin"
web_address = "https://example.org/"

[auth]
jwt_secret = "s3cret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "log", cfg.Mail.Transport)
	assert.Equal(t, "mail.outbound", cfg.AMQP.Queue)
	assert.Equal(t, "opportunistic", cfg.SMTP.TLS)
	assert.Equal(t, "https://example.org", cfg.Booking.WebAddress)
	assert.Equal(t, "Europe/Berlin", cfg.Booking.Location().String())
	assert.Equal(t, "host=localhost port=5432 user=booking password=secret dbname=booking sslmode=disable", cfg.Database.DSN())

	rules := cfg.Booking.Rules()
	assert.Equal(t, 3, rules.DatesPerDay)
	assert.Equal(t, 2, rules.DaysDeadline)
	assert.True(t, cfg.Booking.IsDateTypeEnabled("choir"))
	assert.False(t, cfg.Booking.IsDateTypeEnabled("orchestra"))
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "jwt-from-env")

	path := writeConfig(t, `
[database]
password = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "jwt-from-env", cfg.Auth.JWTSecret)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown timezone",
			content: `
[booking]
timezone = "Mars/Olympus"
[auth]
jwt_secret = "x"
`,
		},
		{
			name: "negative cap",
			content: `
[booking]
dates_per_day = -1
[auth]
jwt_secret = "x"
`,
		},
		{
			name: "unknown transport",
			content: `
[mail]
transport = "pigeon"
[auth]
jwt_secret = "x"
`,
		},
		{
			name: "unknown smtp tls",
			content: `
[smtp]
tls = "sometimes"
[auth]
jwt_secret = "x"
`,
		},
		{
			name: "bad trusted proxy",
			content: `
[rate_limit]
trusted_proxies = ["10.0.0.0/33"]
[auth]
jwt_secret = "x"
`,
		},
		{
			name:    "missing jwt secret",
			content: `[server]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
