package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr()+"/0")
	if err != nil {
		t.Fatalf("NewRedisClient() error = %v", err)
	}
	defer client.Close()

	if err := client.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, _ := mr.Get("k"); got != "v" {
		t.Fatalf("expected v, got %q", got)
	}
}

func TestNewRedisClient_Errors(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty URL")
	}
	if _, err := NewRedisClient(context.Background(), "://bad"); err == nil {
		t.Fatal("expected error for malformed URL")
	}
}
