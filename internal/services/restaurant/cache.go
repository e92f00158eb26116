package restaurant

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"eats-marketplace/internal/models"
)

// Cache is a read-through cache for catalog lookups. Entries expire
// after the TTL and are invalidated explicitly on writes.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a catalog cache
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func restaurantKey(id int64) string {
	return "restaurant:" + strconv.FormatInt(id, 10)
}

func dishKey(id int64) string {
	return "dish:" + strconv.FormatInt(id, 10)
}

// GetRestaurant returns the cached restaurant, or nil on miss
func (c *Cache) GetRestaurant(ctx context.Context, id int64) (*models.Restaurant, error) {
	var r models.Restaurant
	if err := c.get(ctx, restaurantKey(id), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// SetRestaurant stores a restaurant in the cache
func (c *Cache) SetRestaurant(ctx context.Context, r *models.Restaurant) error {
	return c.set(ctx, restaurantKey(r.ID), r)
}

// InvalidateRestaurant drops a restaurant from the cache
func (c *Cache) InvalidateRestaurant(ctx context.Context, id int64) error {
	return c.client.Del(ctx, restaurantKey(id)).Err()
}

// GetDish returns the cached dish, or nil on miss
func (c *Cache) GetDish(ctx context.Context, id int64) (*models.Dish, error) {
	var d models.Dish
	if err := c.get(ctx, dishKey(id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// SetDish stores a dish in the cache
func (c *Cache) SetDish(ctx context.Context, d *models.Dish) error {
	return c.set(ctx, dishKey(d.ID), d)
}

// ErrCacheMiss marks a key absent from the cache
var ErrCacheMiss = redis.Nil

func (c *Cache) get(ctx context.Context, key string, v interface{}) error {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("failed to decode cached value: %w", err)
	}
	return nil
}

func (c *Cache) set(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode value for cache: %w", err)
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}
