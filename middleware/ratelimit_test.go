package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ariebrainware/clinique/config"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedRouter(cfg RateLimitConfig) *gin.Engine {
	setGinTestMode()
	r := gin.New()
	r.POST("/login", RateLimiter(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func postLogin(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":1234"
	return serve(r, req).Code
}

func useMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	config.SetRedisClientForTest(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(config.ResetRedisClientForTest)
	return mr
}

func TestRateLimiterWithoutRedis(t *testing.T) {
	config.SetRedisClientForTest(nil)
	t.Cleanup(config.ResetRedisClientForTest)

	r := rateLimitedRouter(RateLimitConfig{Limit: 2, Window: time.Minute})
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, postLogin(r, "192.168.1.1"), "request %d", i+1)
	}
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	mr := useMiniredis(t)

	r := rateLimitedRouter(RateLimitConfig{Limit: 2, Window: time.Minute})
	assert.Equal(t, http.StatusOK, postLogin(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, postLogin(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, postLogin(r, "10.0.0.1"))

	// Other clients keep their own budget.
	assert.Equal(t, http.StatusOK, postLogin(r, "10.0.0.2"))

	ttl := mr.TTL(rateLimitKey("/login", "10.0.0.1"))
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(2 * time.Minute)
	assert.Equal(t, http.StatusOK, postLogin(r, "10.0.0.1"))
}

func TestRateLimiterDefaults(t *testing.T) {
	useMiniredis(t)

	r := rateLimitedRouter(RateLimitConfig{})
	for i := 0; i < defaultRateLimit; i++ {
		require.Equal(t, http.StatusOK, postLogin(r, "10.0.0.3"))
	}
	assert.Equal(t, http.StatusTooManyRequests, postLogin(r, "10.0.0.3"))
}

func TestRateLimiterFailsOpen(t *testing.T) {
	mr := useMiniredis(t)
	mr.Close()

	r := rateLimitedRouter(RateLimitConfig{Limit: 1, Window: time.Minute})
	assert.Equal(t, http.StatusOK, postLogin(r, "10.0.0.4"))
}

func TestResetRateLimit(t *testing.T) {
	config.SetRedisClientForTest(nil)
	assert.Error(t, ResetRateLimit(context.Background(), "10.0.0.1", "/login"))
	config.ResetRedisClientForTest()

	useMiniredis(t)
	r := rateLimitedRouter(RateLimitConfig{Limit: 1, Window: time.Minute})
	assert.Equal(t, http.StatusOK, postLogin(r, "10.0.0.5"))
	assert.Equal(t, http.StatusTooManyRequests, postLogin(r, "10.0.0.5"))

	require.NoError(t, ResetRateLimit(context.Background(), "10.0.0.5", "/login"))
	assert.Equal(t, http.StatusOK, postLogin(r, "10.0.0.5"))
}
