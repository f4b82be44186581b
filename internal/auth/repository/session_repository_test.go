package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionRepository(client).(*sessionRepository), mr
}

func TestSessionRecord(t *testing.T) {
	t.Run("stores entry under customer id and token", func(t *testing.T) {
		repo, mr := newTestSessionRepo(t)
		at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
		repo.now = func() time.Time { return at }

		err := repo.Record(context.Background(), "customer-1", "tok123", "google")
		require.NoError(t, err)

		raw := mr.HGet("customer-1", "tok123")
		require.NotEmpty(t, raw)

		var entry sessionEntry
		require.NoError(t, json.Unmarshal([]byte(raw), &entry))
		assert.Equal(t, "google", entry.Device)
		assert.InDelta(t, float64(at.Unix()), entry.Timestamp, 1)
	})

	t.Run("multiple tokens per customer", func(t *testing.T) {
		repo, mr := newTestSessionRepo(t)

		require.NoError(t, repo.Record(context.Background(), "customer-1", "tok1", "google"))
		require.NoError(t, repo.Record(context.Background(), "customer-1", "tok2", "google"))

		fields, err := mr.HKeys("customer-1")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"tok1", "tok2"}, fields)
	})

	t.Run("store outage surfaces an error", func(t *testing.T) {
		repo, mr := newTestSessionRepo(t)
		mr.Close()

		err := repo.Record(context.Background(), "customer-1", "tok123", "google")
		require.Error(t, err)
	})
}
