// Package runner writes a payload to an output every time a ticker fires.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tliron/commonlog"
)

// Ticker is satisfied by *ticker.Ticker.
type Ticker interface {
	Tick(ctx context.Context) (time.Time, error)
}

// Options control a Run.
type Options struct {
	// Count stops the run after this many ticks. Zero means no limit.
	Count int
}

// Run writes data followed by a newline to w on every tick until ctx is
// done or opts.Count ticks have fired. It returns the number of ticks
// written. Cancellation is not an error.
func Run(ctx context.Context, ticks Ticker, data []byte, w io.Writer, opts Options) (int, error) {
	log := commonlog.GetLogger("barrage.runner")
	log.Infof("starting: %d byte payload", len(data))

	line := make([]byte, 0, len(data)+1)
	line = append(append(line, data...), '\n')

	n := 0
	for opts.Count == 0 || n < opts.Count {
		fired, err := ticks.Tick(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				log.Infof("stopped after %d ticks: %v", n, err)
				return n, nil
			}
			return n, fmt.Errorf("wait for tick: %w", err)
		}
		if _, err := w.Write(line); err != nil {
			return n, fmt.Errorf("write payload: %w", err)
		}
		n++
		log.Debugf("tick %d at %s", n, fired.Format(time.RFC3339Nano))
	}

	log.Infof("finished after %d ticks", n)
	return n, nil
}
