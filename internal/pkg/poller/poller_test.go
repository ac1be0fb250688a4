package poller

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerRunsImmediatelyAndOnTicks(t *testing.T) {
	var ticks atomic.Int32
	p := New("test", 10*time.Millisecond, func(ctx context.Context) error {
		ticks.Add(1)
		return nil
	})

	p.Start()
	time.Sleep(55 * time.Millisecond)
	p.Stop()

	// One immediate run plus at least a few interval ticks.
	assert.GreaterOrEqual(t, ticks.Load(), int32(3))
}

func TestPollerStopHaltsTicks(t *testing.T) {
	var ticks atomic.Int32
	p := New("test", 5*time.Millisecond, func(ctx context.Context) error {
		ticks.Add(1)
		return nil
	})

	p.Start()
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	after := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, ticks.Load())
}

func TestRunOnce(t *testing.T) {
	var ticks atomic.Int32
	p := New("test", time.Hour, func(ctx context.Context) error {
		ticks.Add(1)
		return nil
	})

	require.NoError(t, p.RunOnce(context.Background()))
	assert.Equal(t, int32(1), ticks.Load())
}
