package db

import (
	"context"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
)

// TestConnect exercises the connection path against a real database.
// Skipped unless DATABASE_URL points somewhere reachable.
func TestConnect(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := Connect(ctx, dsn, zap.NewNop())
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer pool.Close()

	t.Run("schema is idempotent", func(t *testing.T) {
		if err := initSchema(ctx, pool, zap.NewNop()); err != nil {
			t.Fatalf("second initSchema run failed: %v", err)
		}
	})

	t.Run("catalog seeded", func(t *testing.T) {
		var count int
		if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&count); err != nil {
			t.Fatalf("count services: %v", err)
		}
		if count < 8 {
			t.Fatalf("expected at least 8 seeded services, got %d", count)
		}
	})
}

func TestConnectRejectsBadURL(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := Connect(ctx, "not-a-dsn", zap.NewNop()); err == nil {
		t.Fatal("expected error for malformed database url")
	}
}
