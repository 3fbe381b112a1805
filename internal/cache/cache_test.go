package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestGetSetJSON(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	found, err := c.GetJSON(ctx, "k", &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.SetJSON(ctx, "k", payload{Name: "a", Count: 2}, time.Minute))

	var got payload
	found, err = c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "a", Count: 2}, got)
}

func TestAsidePopulatesAndHits(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			calls++
			*dest = payload{Name: "fetched", Count: calls}
			return nil
		}
	}

	var first payload
	require.NoError(t, c.Aside(ctx, "k", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "fetched", first.Name)

	// Second read is served from the cache; fetch stays untouched.
	var second payload
	require.NoError(t, c.Aside(ctx, "k", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			calls++
			*dest = payload{Name: "v", Count: calls}
			return nil
		}
	}

	var v payload
	require.NoError(t, c.Aside(ctx, "k", &v, time.Minute, fetch(&v)))
	c.Invalidate(ctx, "k")
	require.NoError(t, c.Aside(ctx, "k", &v, time.Minute, fetch(&v)))
	assert.Equal(t, 2, calls)
}

func TestDisabledCacheDegrades(t *testing.T) {
	c := New("")
	ctx := context.Background()

	assert.False(t, c.Enabled())
	require.NoError(t, c.SetJSON(ctx, "k", payload{Name: "a"}, time.Minute))

	found, err := c.GetJSON(ctx, "k", &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	// Aside always reaches the source of truth.
	calls := 0
	var v payload
	require.NoError(t, c.Aside(ctx, "k", &v, time.Minute, func() error {
		calls++
		return nil
	}))
	require.NoError(t, c.Aside(ctx, "k", &v, time.Minute, func() error {
		calls++
		return nil
	}))
	assert.Equal(t, 2, calls)
	c.Invalidate(ctx, "k")
}

func TestAccountKey(t *testing.T) {
	assert.Equal(t, "account:7", AccountKey(7))
}
