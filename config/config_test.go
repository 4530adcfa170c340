package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: develop
  serviceName: crm
  log:
    level: info
http:
  port: 8080
auth:
  accessTokenTTL: 15m
secretKey:
  access: from-file
scraper:
  token: ""
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("SCRAPER_TOKEN", "apify-token")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "crm", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Scraper)
	assert.Equal(t, "apify-token", cfg.Scraper.Token)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{RateLimit: &RateLimitConfig{Enabled: true}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.Auth.StateTokenTTL)
	assert.Equal(t, "https://api.apify.com", cfg.Scraper.BaseURL)
	assert.Equal(t, "compass~google-maps-reviews-scraper", cfg.Scraper.ActorID)
	assert.Equal(t, 50, cfg.Scraper.DefaultMaxReviews)
	assert.Equal(t, time.Hour, cfg.Purge.Interval)

	assert.Equal(t, 1, cfg.RateLimit.Capacity)
	assert.Equal(t, 1, cfg.RateLimit.RefillTokens)
	assert.Equal(t, time.Second, cfg.RateLimit.RefillInterval)
	assert.Equal(t, 5*time.Second, cfg.RateLimit.TTL)
	assert.Equal(t, "rl", cfg.RateLimit.Prefix)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour},
		Scraper: &ScraperConfig{DefaultMaxReviews: 20, Timeout: time.Minute},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 20, cfg.Scraper.DefaultMaxReviews)
	assert.Equal(t, time.Minute, cfg.Scraper.Timeout)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}
