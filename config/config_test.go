package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RequiresJWTSecret(t *testing.T) {
	cfg := &Config{TokenTTL: time.Hour}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	cfg.JWTSecret = "some-secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RequiresPositiveTTL(t *testing.T) {
	cfg := &Config{JWTSecret: "some-secret"}
	assert.Error(t, cfg.Validate())

	cfg.TokenTTL = 168 * time.Hour
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	// pin the inputs so values from the ambient environment cannot leak in;
	// getenv treats empty as unset
	for _, key := range []string{"PORT", "TOKEN_TTL", "RABBITMQ_REMINDER_QUEUE", "ES_CLIENTS_INDEX"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "alert-reminders", cfg.RabbitMQReminderQueue)
	assert.Equal(t, "clients", cfg.ESClientsIndex)
}

func TestDebugLoginAllowed(t *testing.T) {
	cases := []struct {
		env     string
		enabled bool
		want    bool
	}{
		{"development", true, true},
		{"development", false, false},
		{"production", true, false},
		{"Production", true, false},
	}
	for _, tc := range cases {
		cfg := &Config{Env: tc.env, DebugLoginEnabled: tc.enabled}
		assert.Equalf(t, tc.want, cfg.DebugLoginAllowed(), "env=%s enabled=%v", tc.env, tc.enabled)
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5432", DBUser: "crm", DBPassword: "pw",
		DBName: "leads", DBSSLMode: "disable",
	}
	assert.Equal(t, "postgres://crm:pw@db:5432/leads?sslmode=disable", cfg.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "http://localhost:3000, https://app.example.com ,"}
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSOrigins())
}
