package presenter

import (
	"log/slog"
	"time"
)

type Option func(*Loop)

// WithScale sets the integer pixel scale. Values below 1 are ignored.
func WithScale(scale int) Option {
	return func(l *Loop) {
		if scale >= 1 {
			l.scale = scale
		}
	}
}

// WithInterval sets the pause between frames. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

func WithSleep(sleep SleepFunc) Option {
	return func(l *Loop) {
		if sleep != nil {
			l.sleep = sleep
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}
