package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: 9090
  read_timeout: 5s
jwt:
  secret: from-file
otp:
  backend: redis
smtp:
  host: smtp.example.com
  port: 587
  tls: true
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))
	return path
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := writeConfig(t)
	t.Setenv("MINDMETER_JWT_SECRET", "from-env")
	t.Setenv("MINDMETER_JWT_EXPIRE_TIME", "48")
	t.Setenv("JWT_SECRET", "ignored-without-prefix")

	kk := koanf.New(".")
	require.NoError(t, load(kk, path))

	conf := &AppConfig{}
	require.NoError(t, kk.Unmarshal("", conf))
	conf.applyDefaults()

	assert.Equal(t, 9090, conf.Server.Port)
	assert.Equal(t, 5*time.Second, conf.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, conf.Server.WriteTimeout)
	assert.Equal(t, "from-env", conf.JWT.Secret)
	assert.Equal(t, 48, conf.JWT.ExpireTime)
	assert.Equal(t, "redis", conf.OTP.Backend)
	assert.Equal(t, 5, conf.OTP.ExpireMinutes)
	assert.Equal(t, "smtp.example.com", conf.Smtp.Host)
	assert.True(t, conf.Smtp.UseTLS)
	assert.Equal(t, "gpt-3.5-turbo", conf.OpenAI.Model)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.Frontend.AllowedOrigins)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MINDMETER_SERVER_PORT", "server.port"},
		{"MINDMETER_DATABASE_MAX_OPEN_CONNS", "database.max_open_conns"},
		{"MINDMETER_STRIPE_WEBHOOK_SECRET", "stripe.webhook_secret"},
		{"MINDMETER_DEBUG", "debug"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	kk := koanf.New(".")
	err := load(kk, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestServerConfig_Addr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8080", ServerConfig{Host: "0.0.0.0", Port: 8080}.Addr())
	assert.Equal(t, ":80", ServerConfig{Port: 80}.Addr())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}
}

func TestSetupLogger_JSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := setupLogger(LogConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
