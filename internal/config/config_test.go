package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("SOME_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SOME_MISSING_KEY", "fallback"))
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.DatabaseURL)
}
