package settings

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-prefs-keeper/internal/processor"
)

// PlayTime accumulates the time an application has been running across
// sessions. The stored total is read by Load and written back, plus the
// time elapsed since Load, by Save.
type PlayTime struct {
	prop Property[time.Duration]
	now  func() time.Time

	mu       sync.Mutex
	stored   time.Duration
	openedAt time.Time
}

// NewPlayTime returns a tracker stored under key. Negative stored totals
// read back as zero.
func NewPlayTime(key string) *PlayTime {
	now := func() time.Time { return time.Now().UTC() }
	return &PlayTime{
		prop:     TimeSpanProperty(key, 0, processor.NewMinCap(time.Duration(0))),
		now:      now,
		openedAt: now(),
	}
}

// Load reads the stored total and restarts the session clock.
func (p *PlayTime) Load(ctx context.Context, r Recorder) error {
	stored, err := p.prop.Get(ctx, r)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.stored = stored
	p.openedAt = p.now()
	p.mu.Unlock()
	return nil
}

// Total returns the stored total plus the current session.
func (p *PlayTime) Total() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stored + p.now().Sub(p.openedAt)
}

// Save writes [PlayTime.Total] to r. It may be called repeatedly during a
// session.
func (p *PlayTime) Save(ctx context.Context, r Recorder) error {
	return p.prop.Set(ctx, r, p.Total())
}
