package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
api:
  environment: test
  port: "9090"
  jwt_signing_key: 0123456789abcdef0123
  allowed_cors_domains: ["http://example.com"]
gin:
  mode: test
postgres:
  host: db
  port: "5432"
raffle:
  auto_migrate: true
kafka:
  brokers: ["kafka:9092"]
  topic: events
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "9090", conf.API.Port)
	assert.Equal(t, []string{"http://example.com"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "test", conf.Gin.Mode)
	assert.Equal(t, "db", conf.Postgres.Host)
	assert.True(t, conf.Raffle.AutoMigrate)
	assert.Equal(t, []string{"kafka:9092"}, conf.Kafka.Brokers)

	// defaults
	assert.Equal(t, 10, conf.Raffle.DefaultTTLMinutes)
	assert.Equal(t, "UTC", conf.Jobs.Timezone)
	assert.Equal(t, 24*time.Hour, conf.API.JWTTTL)
	assert.Equal(t, "info", conf.API.LogLevel)
	assert.Equal(t, 2*time.Second, conf.Kafka.PublishTimeout)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("API_PORT", "7070")
	t.Setenv("POSTGRES_HOST", "override")

	conf, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "7070", conf.API.Port)
	assert.Equal(t, "override", conf.Postgres.Host)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing port",
			content: "api:\n  jwt_signing_key: 0123456789abcdef0123\n",
		},
		{
			name:    "short signing key",
			content: "api:\n  port: \"8080\"\n  jwt_signing_key: short\n",
		},
		{
			name:    "unknown log level",
			content: "api:\n  port: \"8080\"\n  jwt_signing_key: 0123456789abcdef0123\n  log_level: loud\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
