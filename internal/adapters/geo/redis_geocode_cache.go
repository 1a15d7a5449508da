package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"freight-quote-service/internal/ports"
)

// RedisGeocodeCache is a Redis-backed cache for ZIP geocode results.
// Entries expire after the configured TTL so stale coordinates age out.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client, ttl: ttl}
}

func cacheKey(zip string) string {
	return "geocode:zip:" + zip
}

func (c *RedisGeocodeCache) Get(ctx context.Context, zip string) (ports.ZipLocation, bool, error) {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return ports.ZipLocation{}, false, errors.New("geocode cache: zip must not be empty")
	}

	raw, err := c.client.Get(ctx, cacheKey(zip)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.ZipLocation{}, false, nil
	}
	if err != nil {
		return ports.ZipLocation{}, false, fmt.Errorf("geocode cache get %q: %w", zip, err)
	}

	var loc ports.ZipLocation
	if err := json.Unmarshal(raw, &loc); err != nil {
		return ports.ZipLocation{}, false, fmt.Errorf("geocode cache get %q: decode: %w", zip, err)
	}

	return loc, true, nil
}

func (c *RedisGeocodeCache) Put(ctx context.Context, loc ports.ZipLocation) error {
	if strings.TrimSpace(loc.Zip) == "" {
		return errors.New("geocode cache: zip must not be empty")
	}

	raw, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("geocode cache put %q: encode: %w", loc.Zip, err)
	}

	if err := c.client.Set(ctx, cacheKey(loc.Zip), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("geocode cache put %q: %w", loc.Zip, err)
	}

	return nil
}
