// Package profilecache caches identity-provider user profiles in Redis.
// It decorates an identity bridge; invitations pass straight through.
package profilecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

const keyPrefix = "profile:"

// Identity is the bridge being decorated.
type Identity interface {
	CreateInvitation(ctx context.Context, params domain.InvitationParams) (*domain.Invitation, error)
	LookupUser(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// Cache serves LookupUser from Redis when possible.
type Cache struct {
	next   Identity
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// Connect parses redisURL and verifies the server is reachable.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, nil
}

// New wraps next with a Redis-backed profile cache.
func New(client *redis.Client, next Identity, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    logger.With("adapter", "profile_cache"),
	}
}

// CreateInvitation delegates to the wrapped bridge.
func (c *Cache) CreateInvitation(ctx context.Context, params domain.InvitationParams) (*domain.Invitation, error) {
	return c.next.CreateInvitation(ctx, params)
}

// LookupUser returns a cached profile or fetches and stores it. Redis
// failures degrade to a direct lookup. Lookup errors are never cached.
func (c *Cache) LookupUser(ctx context.Context, userID string) (*domain.UserProfile, error) {
	key := keyPrefix + userID

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p domain.UserProfile
		if jsonErr := json.Unmarshal(raw, &p); jsonErr == nil {
			return &p, nil
		}
		c.log.WarnContext(ctx, "discarding corrupt cache entry", slog.String("user_id", userID))
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "profile cache read failed", slog.String("user_id", userID), slog.String("error", err.Error()))
	}

	p, err := c.next.LookupUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(p); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, data, c.ttl).Err(); setErr != nil {
			c.log.WarnContext(ctx, "profile cache write failed", slog.String("user_id", userID), slog.String("error", setErr.Error()))
		}
	}

	return p, nil
}

// Ping checks that Redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Invalidate drops a cached profile.
func (c *Cache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, keyPrefix+userID).Err()
}
