package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("POSTS_ON_PAGE", "")
	t.Setenv("CACHE_TTL_SECONDS", "")

	cfg := LoadConfig()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10, cfg.PostsOnPage)
	assert.Equal(t, 20*time.Second, cfg.CacheTTL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":3000")
	t.Setenv("POSTS_ON_PAGE", "5")
	t.Setenv("CACHE_TTL_SECONDS", "60")

	cfg := LoadConfig()
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, 5, cfg.PostsOnPage)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
}

func TestLoadConfigRejectsBadInts(t *testing.T) {
	t.Setenv("POSTS_ON_PAGE", "not-a-number")
	t.Setenv("CACHE_TTL_SECONDS", "-5")

	cfg := LoadConfig()
	assert.Equal(t, 10, cfg.PostsOnPage)
	assert.Equal(t, 20*time.Second, cfg.CacheTTL)
}
