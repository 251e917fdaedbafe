package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 3},
			{Path: "/reports/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 2},
		},
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("1.2.3.4", "/auth/login", "POST")
		assert.True(t, allowed, "request %d", i)
		assert.Equal(t, 20, info.Limit)
	}
}

func TestLimiter_BlocksAfterBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/auth/login", "POST")
		require.True(t, allowed)
	}

	allowed, info := limiter.Allow("1.2.3.4", "/auth/login", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/auth/login", "POST")
		require.True(t, allowed)
	}

	// A different client has its own bucket.
	allowed, _ := limiter.Allow("5.6.7.8", "/auth/login", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Whitelist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["10.0.0.1"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/auth/login", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["10.0.0.2"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	allowed, info := limiter.Allow("10.0.0.2", "/reports", "GET")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/auth/login", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestLimiter_PrefixMatchedEndpoint(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	// Materialize path matches the "/reports/" prefix config, burst 2.
	allowed, _ := limiter.Allow("1.2.3.4", "/reports/r1/materialize", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("1.2.3.4", "/reports/r1/materialize", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("1.2.3.4", "/reports/r1/materialize", "POST")
	assert.False(t, allowed)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/auth/login", Method: "POST", Limit: 20},
		{Path: "/reports/", Method: "POST", Limit: 60},
	}

	t.Run("exact match", func(t *testing.T) {
		cfg := MatchEndpoint("/auth/login", "POST", configs)
		require.NotNil(t, cfg)
		assert.Equal(t, 20, cfg.Limit)
	})

	t.Run("method mismatch", func(t *testing.T) {
		assert.Nil(t, MatchEndpoint("/auth/login", "GET", configs))
	})

	t.Run("prefix match", func(t *testing.T) {
		cfg := MatchEndpoint("/reports/r1/materialize", "POST", configs)
		require.NotNil(t, cfg)
		assert.Equal(t, 60, cfg.Limit)
	})

	t.Run("health is unlimited", func(t *testing.T) {
		cfg := MatchEndpoint("/health", "GET", configs)
		require.NotNil(t, cfg)
		assert.Equal(t, 0, cfg.Limit)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, MatchEndpoint("/unknown", "GET", configs))
	})
}

func TestCleanupBuckets(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	limiter.Allow("1.2.3.4", "/reports", "GET")
	require.Len(t, limiter.buckets, 1)

	// A freshly used bucket survives cleanup.
	limiter.cleanupBuckets()
	assert.Len(t, limiter.buckets, 1)

	// An idle bucket is removed.
	for _, bucket := range limiter.buckets {
		bucket.lastSeen = time.Now().Add(-2 * time.Hour)
	}
	limiter.cleanupBuckets()
	assert.Empty(t, limiter.buckets)
}

func TestParseIPList(t *testing.T) {
	assert.Empty(t, parseIPList(""))

	list := parseIPList("1.2.3.4, 5.6.7.8 ,")
	assert.True(t, list["1.2.3.4"])
	assert.True(t, list["5.6.7.8"])
	assert.Len(t, list, 2)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.NotEmpty(t, cfg.EndpointConfigs)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
}
