package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestLastLoginRoundTrip(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	require.NoError(t, RecordLastLogin(ctx, client, 7, at))

	got, err := LastLogin(ctx, client, 7)
	require.NoError(t, err)
	require.Equal(t, at.Unix(), got.Unix())
}

func TestLastLoginNeverLoggedIn(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	_, err := LastLogin(ctx, client, 99)
	require.Error(t, err)
}
