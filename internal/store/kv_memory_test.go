package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryKeyValueStore()

	_, err := s.Get(ctx, "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "token", "a"))
	require.NoError(t, s.Set(ctx, "token", "b"))

	got, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	require.NoError(t, s.Remove(ctx, "token"))
	require.NoError(t, s.Remove(ctx, "token"))

	_, err = s.Get(ctx, "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryKV_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryKeyValueStore()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%4)
			_ = s.Set(ctx, key, "v")
			_, _ = s.Get(ctx, key)
		}()
	}
	wg.Wait()

	for i := range 4 {
		v, err := s.Get(ctx, fmt.Sprintf("k%d", i))
		require.NoError(t, err)
		assert.Equal(t, "v", v)
	}
}
