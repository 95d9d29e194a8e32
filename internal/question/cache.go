package question

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultCacheTTL = 5 * time.Minute

	categoriesKey = "trivia:categories"
	questionsKey  = "trivia:questions"
)

// SnapshotCache holds read-mostly snapshots of the store. Get methods return
// (nil, nil) on a miss.
type SnapshotCache interface {
	GetCategories(ctx context.Context) ([]Category, error)
	SetCategories(ctx context.Context, categories []Category) error
	GetQuestions(ctx context.Context) ([]Question, error)
	SetQuestions(ctx context.Context, questions []Question) error
	InvalidateQuestions(ctx context.Context) error
}

// Cache provides Redis-backed snapshots so listing endpoints skip Postgres.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ SnapshotCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) GetCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	ok, err := c.get(ctx, categoriesKey, &out)
	if err != nil || !ok {
		return nil, err
	}
	return nonNil(out), nil
}

func (c *Cache) SetCategories(ctx context.Context, categories []Category) error {
	return c.set(ctx, categoriesKey, categories)
}

func (c *Cache) GetQuestions(ctx context.Context) ([]Question, error) {
	var out []Question
	ok, err := c.get(ctx, questionsKey, &out)
	if err != nil || !ok {
		return nil, err
	}
	return nonNil(out), nil
}

func (c *Cache) SetQuestions(ctx context.Context, questions []Question) error {
	return c.set(ctx, questionsKey, questions)
}

func (c *Cache) InvalidateQuestions(ctx context.Context) error {
	return c.client.Del(ctx, questionsKey).Err()
}

func (c *Cache) get(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// nonNil turns a cached empty list into a hit rather than a miss.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// NopCache is used when Redis is not configured; every lookup misses.
type NopCache struct{}

var _ SnapshotCache = NopCache{}

func (NopCache) GetCategories(context.Context) ([]Category, error) { return nil, nil }
func (NopCache) SetCategories(context.Context, []Category) error { return nil }
func (NopCache) GetQuestions(context.Context) ([]Question, error) { return nil, nil }
func (NopCache) SetQuestions(context.Context, []Question) error { return nil }
func (NopCache) InvalidateQuestions(context.Context) error { return nil }
