package colorscheme

import (
	"context"
	"time"

	"github.com/bnema/shade/internal/logging"
)

// Source watches for possible color scheme changes and calls changed when one
// may have happened. It runs until ctx is cancelled or stop is called.
type Source func(ctx context.Context, changed func()) (stop func(), err error)

// DefaultPollInterval is used by PollSource when given a non-positive interval.
const DefaultPollInterval = 5 * time.Second

// PollSource asks for a refresh every interval.
func PollSource(interval time.Duration) Source {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return func(ctx context.Context, changed func()) (func(), error) {
		ctx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})

		go func() {
			defer close(done)
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					changed()
				}
			}
		}()

		logging.FromContext(ctx).Debug().Dur("interval", interval).Msg("color scheme: polling started")
		return func() {
			cancel()
			<-done
		}, nil
	}
}

// FallbackSource tries primary and uses fallback when primary cannot start.
func FallbackSource(primary, fallback Source) Source {
	return func(ctx context.Context, changed func()) (func(), error) {
		stop, err := primary(ctx, changed)
		if err == nil {
			return stop, nil
		}
		logging.FromContext(ctx).Debug().Err(err).Msg("color scheme: primary change source unavailable")
		return fallback(ctx, changed)
	}
}
