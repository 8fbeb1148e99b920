package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPages_Order(t *testing.T) {
	fn := func(_ context.Context, page int) ([]int, error) {
		// later pages finish first
		time.Sleep(time.Duration(4-page) * 5 * time.Millisecond)
		return []int{page * 10, page*10 + 1}, nil
	}

	var mu sync.Mutex
	seen := map[int]int{}
	got, err := Pages(context.Background(), 1, 3, 3, fn, func(page, records int) {
		mu.Lock()
		defer mu.Unlock()
		seen[page] = records
	})

	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 20, 21, 30, 31}, got)
	assert.Equal(t, map[int]int{1: 2, 2: 2, 3: 2}, seen)
}

func TestPages_BoundedWorkers(t *testing.T) {
	var inFlight, peak atomic.Int32

	fn := func(_ context.Context, page int) ([]int, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return []int{page}, nil
	}

	got, err := Pages(context.Background(), 1, 6, 2, fn, nil)
	require.NoError(t, err)
	assert.Len(t, got, 6)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestPages_Error(t *testing.T) {
	boom := errors.New("boom")
	fn := func(ctx context.Context, page int) ([]int, error) {
		if page == 2 {
			return nil, boom
		}
		return []int{page}, nil
	}

	_, err := Pages(context.Background(), 1, 4, 1, fn, nil)
	assert.ErrorIs(t, err, boom)
}

func TestPages_ErrorNotHiddenByCancelledPages(t *testing.T) {
	unavailable := errors.New("HTTP 503")
	fn := func(ctx context.Context, page int) ([]int, error) {
		if page == 2 {
			return nil, unavailable
		}
		<-ctx.Done()
		return nil, fmt.Errorf("fetch page %d: %w", page, ctx.Err())
	}

	_, err := Pages(context.Background(), 1, 3, 3, fn, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, unavailable)
}

func TestPages_ParentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Pages(ctx, 1, 2, 2, func(ctx context.Context, page int) ([]int, error) {
		return nil, fmt.Errorf("fetch page %d: %w", page, ctx.Err())
	}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPages_Zero(t *testing.T) {
	got, err := Pages(context.Background(), 1, 0, 2, func(context.Context, int) ([]int, error) {
		t.Fatal("no page should be fetched")
		return nil, nil
	}, nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}
