// Package ticker provides an interval timer whose period is randomly
// perturbed on every tick.
package ticker

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/tliron/commonlog"
)

// Source yields uniformly distributed values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Ticker fires after base*(U+factor) where U is drawn from its Source anew for
// every tick. It owns one timer at a time and must be used by a single
// goroutine.
type Ticker struct {
	base   time.Duration
	factor float64
	source Source
	timer  *time.Timer
	log    commonlog.Logger
}

// Option configures a Ticker in New.
type Option func(*Ticker)

// WithSource replaces the process-wide random source.
func WithSource(s Source) Option {
	return func(t *Ticker) {
		t.source = s
	}
}

// New returns a Ticker and schedules its first tick.
func New(base time.Duration, factor float64, opts ...Option) *Ticker {
	t := &Ticker{
		base:   base,
		factor: factor,
		source: globalSource{},
		log:    commonlog.GetLogger("barrage.ticker"),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.timer = time.NewTimer(t.next())
	return t
}

// Tick blocks until the next tick fires and returns the time it fired. The
// following tick is scheduled before Tick returns. If ctx is done first, Tick
// returns ctx.Err() and the pending tick stays scheduled.
func (t *Ticker) Tick(ctx context.Context) (time.Time, error) {
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	case now := <-t.timer.C:
		t.timer.Reset(t.next())
		return now, nil
	}
}

// Stop releases the timer. The Ticker must not be used afterwards.
func (t *Ticker) Stop() {
	t.timer.Stop()
}

func (t *Ticker) next() time.Duration {
	d := Jitter(t.base, t.factor, t.source.Float64())
	t.log.Debugf("next tick in %s", d)
	return d
}

// Jitter returns base*(u+factor), clamped to the range of time.Duration with
// negative results reported as zero.
func Jitter(base time.Duration, factor, u float64) time.Duration {
	d := float64(base) * (u + factor)
	switch {
	case d <= 0 || math.IsNaN(d):
		return 0
	case d >= math.MaxInt64:
		return math.MaxInt64
	}
	return time.Duration(d)
}
