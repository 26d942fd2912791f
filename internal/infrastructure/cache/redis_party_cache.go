package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	appparty "github.com/partysvc/backend/internal/application/party"
	"github.com/redis/go-redis/v9"
)

// RedisPartyCache implements the party response cache on Redis. Every
// operation runs under a short timeout of its own so a stalled Redis can
// only cost that much latency, never block a request.
type RedisPartyCache struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
	opTimeout time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisPartyCache creates a cache backed by a new Redis client, verifying
// connectivity before returning.
func NewRedisPartyCache(cfg RedisConfig, namespace string, ttl, opTimeout time.Duration) (*RedisPartyCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisPartyCacheWithClient(client, namespace, ttl, opTimeout), nil
}

// NewRedisPartyCacheWithClient creates a cache with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisPartyCacheWithClient(client *redis.Client, namespace string, ttl, opTimeout time.Duration) *RedisPartyCache {
	if namespace == "" {
		namespace = "partysvc"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if opTimeout <= 0 {
		opTimeout = 250 * time.Millisecond
	}
	return &RedisPartyCache{
		client:    client,
		namespace: namespace,
		ttl:       ttl,
		opTimeout: opTimeout,
	}
}

// Get returns the cached response for the party, or (nil, nil) on a miss.
// A corrupt entry counts as a miss and is evicted.
func (c *RedisPartyCache) Get(ctx context.Context, partyID int64) (*appparty.PartyResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	key := c.key(partyID)
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read party cache entry: %w", err)
	}

	var resp appparty.PartyResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		c.client.Del(ctx, key)
		return nil, nil
	}
	return &resp, nil
}

// Set stores the response under the party's ID with the configured TTL.
func (c *RedisPartyCache) Set(ctx context.Context, resp appparty.PartyResponse) error {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	payload, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode party cache entry: %w", err)
	}

	if err := c.client.Set(ctx, c.key(resp.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write party cache entry: %w", err)
	}
	return nil
}

// Ping checks Redis reachability, used by the health endpoint.
func (c *RedisPartyCache) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client
func (c *RedisPartyCache) Close() error {
	return c.client.Close()
}

func (c *RedisPartyCache) key(partyID int64) string {
	return c.namespace + ":party:" + strconv.FormatInt(partyID, 10)
}

// Ensure RedisPartyCache implements PartyCache
var _ appparty.PartyCache = (*RedisPartyCache)(nil)
