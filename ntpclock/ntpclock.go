// Package ntpclock provides a watchface.Clock corrected against an NTP
// server, for hosts whose system clock cannot be trusted.
package ntpclock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/beevik/ntp"
)

// DefaultResync is how often Run queries the server again.
const DefaultResync = 30 * time.Minute

// Clock is the local clock plus the last offset measured against server.
// Until the first successful Sync it reads the local clock unchanged.
type Clock struct {
	server string
	query  func(server string) (time.Duration, error)
	log    *slog.Logger

	mu     sync.RWMutex
	offset time.Duration
	synced time.Time
}

// New returns a clock for server. log may be nil.
func New(server string, log *slog.Logger) *Clock {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Clock{server: server, query: queryOffset, log: log}
}

func queryOffset(server string) (time.Duration, error) {
	resp, err := ntp.QueryWithOptions(server, ntp.QueryOptions{Timeout: 5 * time.Second})
	if err != nil {
		return 0, err
	}
	if err := resp.Validate(); err != nil {
		return 0, err
	}
	return resp.ClockOffset, nil
}

// Now returns the local time corrected by the last measured offset.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Now().Add(c.offset)
}

// Offset returns the correction applied to the local clock and when it was
// measured. The zero time means no sync has succeeded yet.
func (c *Clock) Offset() (time.Duration, time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset, c.synced
}

// Sync queries the server once. On failure the previous offset is kept.
func (c *Clock) Sync() error {
	off, err := c.query(c.server)
	if err != nil {
		return fmt.Errorf("ntp query %s: %w", c.server, err)
	}

	c.mu.Lock()
	c.offset = off
	c.synced = time.Now()
	c.mu.Unlock()

	c.log.Debug("clock synced", "server", c.server, "offset", off)
	return nil
}

// Run syncs now and then every interval until ctx is done. Failures are
// logged and retried at the next interval.
func (c *Clock) Run(ctx context.Context, interval time.Duration) {
	if err := c.Sync(); err != nil {
		c.log.Warn("clock sync failed", "err", err)
	}

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := c.Sync(); err != nil {
				c.log.Warn("clock sync failed", "err", err)
			}
		}
	}
}
