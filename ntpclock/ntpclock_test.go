package ntpclock

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satindergrewal/watchface"
)

var _ watchface.Clock = (*Clock)(nil)

func TestUnsyncedReadsLocalTime(t *testing.T) {
	c := New("pool.ntp.org", nil)
	off, at := c.Offset()
	assert.Zero(t, off)
	assert.True(t, at.IsZero())
	assert.WithinDuration(t, time.Now(), c.Now(), time.Second)
}

func TestSyncAppliesOffset(t *testing.T) {
	c := New("time.example", nil)
	c.query = func(server string) (time.Duration, error) {
		assert.Equal(t, "time.example", server)
		return 2 * time.Hour, nil
	}

	require.NoError(t, c.Sync())
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), c.Now(), time.Second)

	off, at := c.Offset()
	assert.Equal(t, 2*time.Hour, off)
	assert.False(t, at.IsZero())
}

func TestSyncFailureKeepsOffset(t *testing.T) {
	c := New("time.example", nil)
	c.query = func(string) (time.Duration, error) { return -time.Minute, nil }
	require.NoError(t, c.Sync())

	c.query = func(string) (time.Duration, error) { return 0, errors.New("timeout") }
	err := c.Sync()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time.example")

	off, _ := c.Offset()
	assert.Equal(t, -time.Minute, off)
}

func TestRunResyncs(t *testing.T) {
	c := New("time.example", nil)
	var calls atomic.Int32
	c.query = func(string) (time.Duration, error) {
		calls.Add(1)
		return time.Second, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Run(ctx, 10*time.Millisecond)
	}()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
