// Package cli implements the fbdisp command line: argument handling, startup
// and the fatal-error policy. Only main calls os.Exit.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/faryon93/fbdisp/internal/capture"
	"github.com/faryon93/fbdisp/internal/config"
	"github.com/faryon93/fbdisp/internal/errors"
	"github.com/faryon93/fbdisp/internal/logx"
	"github.com/faryon93/fbdisp/internal/presenter"
)

// Source is an acquired framebuffer.
type Source interface {
	Info() capture.ScreenInfo
	Frame() *capture.Frame
	Close() error
}

// Window is the display the frames are presented in.
type Window interface {
	presenter.Surface
	presenter.Events
	Run(ctx context.Context, loop func(context.Context) error) error
}

// Deps are the platform pieces the command is built from.
type Deps struct {
	OpenSource func(path string) (Source, error)
	NewWindow  func(cfg *config.Config, info capture.ScreenInfo) (Window, error)
}

// Execute runs fbdisp with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, deps Deps) int {
	if args == nil {
		args = []string{}
	}
	cfg := config.Default()
	cmd := NewRootCmd(cfg, deps)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if stack := errors.Stack(err); cfg.Debug && stack != "" {
		fmt.Fprintln(stderr, stack)
	} else {
		fmt.Fprintln(stderr, "fbdisp: "+err.Error())
	}
	return 1
}

// NewRootCmd builds the fbdisp command. Parsed values land in cfg.
func NewRootCmd(cfg *config.Config, deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fbdisp <device-path> [scale]",
		Short:         "fbdisp mirrors a Linux framebuffer device into a window",
		Long:          "fbdisp maps a framebuffer device such as /dev/fb0 read-only and shows its\ncontents in a window, refreshed every interval. An integer scale spreads\nthe pixels out over a larger window.",
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.ParseArgs(args); err != nil {
				return err
			}
			// from here on failures are not usage errors
			cmd.SilenceUsage = true
			logger := logx.New(cmd.ErrOrStderr(), cfg.Debug)
			return run(cmd.Context(), cfg, deps, logger)
		},
	}
	cmd.Flags().DurationVar(&cfg.Interval, `interval`, cfg.Interval, `pause between frames`)
	cmd.Flags().BoolVarP(&cfg.Debug, `debug`, `d`, false, `debug logging and error stack traces`)
	return cmd
}

func run(ctx context.Context, cfg *config.Config, deps Deps, logger *slog.Logger) error {
	if deps.OpenSource == nil || deps.NewWindow == nil {
		return errors.New("incomplete dependencies")
	}

	src, err := deps.OpenSource(cfg.DevicePath)
	if err != nil {
		return err
	}
	defer func() {
		logx.IsErr(logger, slog.LevelWarn, src.Close(), "device", cfg.DevicePath)
	}()

	info := src.Info()
	logger.Info("fbdisp starting",
		"device", cfg.DevicePath,
		"resolution", fmt.Sprintf("%dx%d", info.Width, info.Height),
		"bpp", info.BitsPerPixel,
		"scale", cfg.Scale,
		"interval", cfg.Interval,
	)

	win, err := deps.NewWindow(cfg, info)
	if err != nil {
		return err
	}
	loop := presenter.New(src.Frame(), win, win,
		presenter.WithScale(cfg.Scale),
		presenter.WithInterval(cfg.Interval),
		presenter.WithLogger(logger),
	)
	if err := win.Run(ctx, loop.Run); err != nil {
		return err
	}

	logger.Info("fbdisp stopped", "frames", loop.Frames(), "skipped", loop.Skipped())
	return nil
}
