package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/AhmedGamal2004/My-Personal-final/internal/model"
)

const (
	ResourceProfile  = "profile"
	ResourceMessages = "messages"
)

// ContentCache holds the profile and the elided message listing. A resource
// marked dirty is not re-cached until the marker expires.
type ContentCache struct {
	client         *redisv9.Client
	prefix         string
	ttl            time.Duration
	dirtyMarkerTTL time.Duration
}

func NewContentCache(client *redisv9.Client, prefix string, ttl, dirtyMarkerTTL time.Duration) *ContentCache {
	if prefix == "" {
		prefix = "content"
	}
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	if dirtyMarkerTTL <= 0 {
		dirtyMarkerTTL = 5 * time.Second
	}
	return &ContentCache{
		client:         client,
		prefix:         prefix,
		ttl:            ttl,
		dirtyMarkerTTL: dirtyMarkerTTL,
	}
}

func (c *ContentCache) GetProfile(ctx context.Context) (*model.Settings, bool, error) {
	var settings model.Settings
	hit, err := c.get(ctx, ResourceProfile, &settings)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &settings, true, nil
}

func (c *ContentCache) SetProfile(ctx context.Context, settings *model.Settings) error {
	return c.set(ctx, ResourceProfile, settings)
}

func (c *ContentCache) GetMessages(ctx context.Context) ([]model.Message, bool, error) {
	var messages []model.Message
	hit, err := c.get(ctx, ResourceMessages, &messages)
	if err != nil || !hit {
		return nil, hit, err
	}
	return messages, true, nil
}

func (c *ContentCache) SetMessages(ctx context.Context, messages []model.Message) error {
	return c.set(ctx, ResourceMessages, messages)
}

// Invalidate marks the resource dirty and drops its cached value.
func (c *ContentCache) Invalidate(ctx context.Context, resource string) error {
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, c.dirtyKey(resource), "1", c.dirtyMarkerTTL)
	pipe.Del(ctx, c.valueKey(resource))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis invalidate %s failed: %w", resource, err)
	}
	return nil
}

func (c *ContentCache) IsDirty(ctx context.Context, resource string) (bool, error) {
	exists, err := c.client.Exists(ctx, c.dirtyKey(resource)).Result()
	if err != nil {
		return false, fmt.Errorf("redis check dirty marker failed: %w", err)
	}
	return exists > 0, nil
}

func (c *ContentCache) get(ctx context.Context, resource string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, c.valueKey(resource)).Bytes()
	if err == redisv9.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s failed: %w", resource, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("unmarshal cached %s failed: %w", resource, err)
	}
	return true, nil
}

func (c *ContentCache) set(ctx context.Context, resource string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s cache failed: %w", resource, err)
	}
	if err := c.client.Set(ctx, c.valueKey(resource), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s failed: %w", resource, err)
	}
	return nil
}

func (c *ContentCache) valueKey(resource string) string {
	return fmt.Sprintf("%s:%s", c.prefix, resource)
}

func (c *ContentCache) dirtyKey(resource string) string {
	return fmt.Sprintf("%s:%s:dirty", c.prefix, resource)
}
