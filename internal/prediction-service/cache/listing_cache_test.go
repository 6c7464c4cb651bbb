package cache

import (
	"context"
	"testing"
	"time"
)

// Sem Redis o serviço roda com cache nil; nenhum acesso pode explodir
func TestNilCacheIsNoop(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var dst []string
	ok, err := c.Get(ctx, "weather", &dst)
	if ok || err != nil {
		t.Fatalf("nil cache Get = (%v, %v), want miss", ok, err)
	}

	if err := c.Set(ctx, "weather", []string{"x"}, time.Second); err != nil {
		t.Fatalf("nil cache Set: %v", err)
	}

	if err := c.Invalidate(ctx, "weather"); err != nil {
		t.Fatalf("nil cache Invalidate: %v", err)
	}
}

func TestKeyPerCategory(t *testing.T) {
	if key("") != "predictions:active:all" {
		t.Errorf("key(\"\") = %q", key(""))
	}
	if key("weather") != "predictions:active:weather" {
		t.Errorf("key(weather) = %q", key("weather"))
	}
}
