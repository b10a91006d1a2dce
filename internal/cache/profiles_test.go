package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedRow struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	loads := 0
	load := func(dest *cachedRow) func() error {
		return func() error {
			loads++
			dest.ID = 9
			dest.Name = "loaded"
			return nil
		}
	}

	var first cachedRow
	require.NoError(t, Aside(ctx, ProfileKey(9), &first, ProfileTTL, load(&first)))
	assert.Equal(t, 1, loads)
	assert.True(t, mr.Exists(ProfileKey(9)))

	var second cachedRow
	require.NoError(t, Aside(ctx, ProfileKey(9), &second, ProfileTTL, load(&second)))
	assert.Equal(t, 1, loads, "second read must be served from cache")
	assert.Equal(t, "loaded", second.Name)
}

func TestAside_LoaderErrorNotCached(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	var row cachedRow
	loadErr := errors.New("db down")
	err := Aside(ctx, ProfileKey(1), &row, ProfileTTL, func() error { return loadErr })
	assert.ErrorIs(t, err, loadErr)
	assert.False(t, mr.Exists(ProfileKey(1)))
}

func TestInvalidateProfile(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	var row cachedRow
	require.NoError(t, Aside(ctx, ProfileKey(3), &row, ProfileTTL, func() error {
		row.ID = 3
		return nil
	}))
	require.True(t, mr.Exists(ProfileKey(3)))

	InvalidateProfile(ctx, 3)
	assert.False(t, mr.Exists(ProfileKey(3)))
}

func TestAside_NilClientFallsBackToLoader(t *testing.T) {
	SetClient(nil)

	var row cachedRow
	err := Aside(context.Background(), ProfileKey(4), &row, ProfileTTL, func() error {
		row.Name = "direct"
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "direct", row.Name)
}
