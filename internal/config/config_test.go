package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "JWT_EXPIRES_IN", "REQUEST_TIMEOUT", "IS_PROD", "COOKIE_SECURE", "REDIS_DB", "DB_MAX_OPEN_CONNS"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.False(t, cfg.IsProd)
	assert.False(t, cfg.CookieSecure)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DB_USER", "frag")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "fragrancefinder")
	t.Setenv("JWT_EXPIRES_IN", "2d")
	t.Setenv("REQUEST_TIMEOUT", "750ms")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IS_PROD", "true")
	t.Setenv("COOKIE_SECURE", "")

	cfg := LoadConfig()
	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, 48*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.IsProd)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "frag:pw@tcp(db:3307)/fragrancefinder?parseTime=true&charset=utf8mb4&loc=UTC", cfg.DSN())
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "soon")
	t.Setenv("REDIS_DB", "x")

	cfg := LoadConfig()
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("7d")
	require.NoError(t, err)
	assert.Equal(t, 168*time.Hour, d)

	d, err = ParseDuration("90m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	_, err = ParseDuration("xd")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{IsProd: true, DBName: "x"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{DBName: "x"}
	require.NoError(t, cfg.Validate())
	assert.NotEmpty(t, cfg.JWTSecret)

	cfg = &Config{JWTSecret: "s"}
	assert.Error(t, cfg.Validate())
}

func TestSetupLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	SetupLogger(&Config{IsProd: true, LogLevel: "debug"})
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	SetupLogger(&Config{LogLevel: "chatty"})
	assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
