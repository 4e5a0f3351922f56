package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/apperrors"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRepo(t *testing.T) (*RedisSessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSessionRepository(client), mr
}

func TestRedisSessionRepository_CreateAndFind(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	if err := repo.CreateSession(ctx, "tok", "user-1", time.Hour); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if !mr.Exists("sess:tok") {
		t.Fatal("expected key sess:tok to exist")
	}
	if ttl := mr.TTL("sess:tok"); ttl != time.Hour {
		t.Fatalf("expected ttl 1h, got %v", ttl)
	}

	userID, err := repo.FindSessionUserID(ctx, "tok")
	if err != nil {
		t.Fatalf("FindSessionUserID() error = %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %q", userID)
	}
}

func TestRedisSessionRepository_Expiry(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	if err := repo.CreateSession(ctx, "tok", "user-1", time.Minute); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	mr.FastForward(2 * time.Minute)

	_, err := repo.FindSessionUserID(ctx, "tok")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestRedisSessionRepository_Delete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if err := repo.CreateSession(ctx, "tok", "user-1", time.Hour); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if err := repo.DeleteSession(ctx, "tok"); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if _, err := repo.FindSessionUserID(ctx, "tok"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting twice is fine.
	if err := repo.DeleteSession(ctx, "tok"); err != nil {
		t.Fatalf("second DeleteSession() error = %v", err)
	}
}

func TestRedisSessionRepository_StoreDown(t *testing.T) {
	repo, mr := newTestRepo(t)
	mr.Close()

	_, err := repo.FindSessionUserID(context.Background(), "tok")
	if err == nil || errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected a store error, got %v", err)
	}
}
