package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("game-%02d.rcg", i)
	}
	return out
}

func TestRunKeepsInputOrder(t *testing.T) {
	in := paths(20)
	delay := make(map[string]time.Duration, len(in))
	for i, p := range in {
		delay[p] = time.Duration(len(in)-i) * 100 * time.Microsecond
	}
	results := New(4).Run(context.Background(), in, func(_ context.Context, p string) (interface{}, error) {
		// later jobs finish first
		time.Sleep(delay[p])
		return p + "!", nil
	})

	require.Len(t, results, len(in))
	for i, r := range results {
		assert.Equal(t, i, r.Job.ID)
		assert.Equal(t, in[i], r.Job.Path)
		assert.Equal(t, in[i]+"!", r.Value)
		assert.NoError(t, r.Err)
	}
	assert.Equal(t, 0, Failed(results))
}

func TestRunBoundsConcurrency(t *testing.T) {
	var running, peak atomic.Int32
	New(3).Run(context.Background(), paths(12), func(context.Context, string) (interface{}, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		running.Add(-1)
		return nil, nil
	})
	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.GreaterOrEqual(t, peak.Load(), int32(1))
}

func TestRunReportsErrors(t *testing.T) {
	boom := errors.New("boom")
	results := New(2).Run(context.Background(), paths(4), func(_ context.Context, p string) (interface{}, error) {
		if p == "game-02.rcg" {
			return nil, boom
		}
		return nil, nil
	})
	assert.ErrorIs(t, results[2].Err, boom)
	assert.Equal(t, 1, Failed(results))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	results := New(2).Run(ctx, paths(5), func(context.Context, string) (interface{}, error) {
		calls.Add(1)
		return nil, nil
	})
	require.Len(t, results, 5)
	assert.Equal(t, int32(0), calls.Load())
	for i, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled, i)
		assert.Equal(t, i, r.Job.ID)
	}
}

func TestRunEmpty(t *testing.T) {
	assert.Empty(t, New(0).Run(context.Background(), nil, nil))
	assert.Positive(t, New(0).Workers())
}
