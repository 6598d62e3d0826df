package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_Defaults(t *testing.T) {
	cfg := MustLoad()
	require.NotNil(t, cfg)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.Address())
	assert.Equal(t, 30*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
}

func TestMustLoad_PortFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")

	cfg := MustLoad()
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Address())
}

func TestConfig_String(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("PORT", "9090")

	cfg := MustLoad()
	s := cfg.String()

	assert.Contains(t, s, "Env: test")
	assert.Contains(t, s, "Port: 9090")
}
