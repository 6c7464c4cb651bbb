package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache guarda o resultado da listagem de predictions ativas no Redis.
// Receiver nil é seguro: todo acesso vira no-op/miss, então o serviço roda
// igual sem Redis
type Cache struct{ R *redis.Client }

func New(r *redis.Client) *Cache { return &Cache{R: r} }

func key(category string) string {
	if category == "" {
		return "predictions:active:all"
	}
	return "predictions:active:" + category
}

// Get devolve (true, nil) com dst preenchido quando há hit
func (c *Cache) Get(ctx context.Context, category string, dst any) (bool, error) {
	if c == nil {
		return false, nil
	}
	b, err := c.R.Get(ctx, key(category)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, dst)
}

func (c *Cache) Set(ctx context.Context, category string, v any, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	b, _ := json.Marshal(v)
	return c.R.Set(ctx, key(category), b, ttl).Err()
}

// Invalidate derruba a chave da categoria e a chave geral após uma criação
func (c *Cache) Invalidate(ctx context.Context, category string) error {
	if c == nil {
		return nil
	}
	return c.R.Del(ctx, key(category), key("")).Err()
}
