package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	appparty "github.com/partysvc/backend/internal/application/party"
)

func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1", // nothing listens here
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestNewRedisPartyCacheWithClientDefaults(t *testing.T) {
	client := unreachableClient()
	defer client.Close()

	c := NewRedisPartyCacheWithClient(client, "", 0, 0)

	assert.Equal(t, "partysvc", c.namespace)
	assert.Equal(t, 24*time.Hour, c.ttl)
	assert.Equal(t, 250*time.Millisecond, c.opTimeout)
}

func TestRedisPartyCacheKey(t *testing.T) {
	client := unreachableClient()
	defer client.Close()

	c := NewRedisPartyCacheWithClient(client, "svc", time.Hour, time.Second)
	assert.Equal(t, "svc:party:42", c.key(42))
}

func TestRedisPartyCacheUnreachableServer(t *testing.T) {
	client := unreachableClient()
	defer client.Close()

	c := NewRedisPartyCacheWithClient(client, "svc", time.Hour, 100*time.Millisecond)
	ctx := context.Background()

	// Errors surface to the caller; the service layer treats them as
	// cache misses rather than request failures.
	_, err := c.Get(ctx, 42)
	assert.Error(t, err)

	err = c.Set(ctx, appparty.PartyResponse{ID: 42})
	assert.Error(t, err)

	assert.Error(t, c.Ping(ctx))
}

func TestNewRedisPartyCacheConnectFailure(t *testing.T) {
	_, err := NewRedisPartyCache(RedisConfig{Host: "127.0.0.1", Port: 1}, "svc", time.Hour, time.Second)
	assert.Error(t, err)
}
