package logx

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/faryon93/fbdisp/internal/errors"
)

// New returns a text logger writing to w. debug lowers the level to Debug.
func New(w io.Writer, debug bool) *slog.Logger {
	lvl := slog.LevelInfo
	if debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func Log(logger *slog.Logger, lvl slog.Level, skip int, msg string, args ...any) {
	if logger == nil || !logger.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	_ = logger.Handler().Handle(context.Background(), r)
}

// IsErr logs err (each joined error separately) and reports whether it was non-nil.
func IsErr(logger *slog.Logger, lvl slog.Level, err error, args ...any) bool {
	if err == nil {
		return false
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, err := range joined.Unwrap() {
			Log(logger, lvl, 3, err.Error(), args...)
		}
	} else {
		Log(logger, lvl, 3, err.Error(), args...)
	}
	return true
}
