package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/faryon93/fbdisp/internal/capture"
	"github.com/faryon93/fbdisp/internal/cli"
	"github.com/faryon93/fbdisp/internal/config"
	"github.com/faryon93/fbdisp/internal/display"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// Ebitengine RunGame must be on the main goroutine, and Execute runs it
	// synchronously.
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr, cli.Deps{
		OpenSource: openSource,
		NewWindow:  newWindow,
	})
	stop()
	os.Exit(code)
}

func newWindow(cfg *config.Config, info capture.ScreenInfo) (cli.Window, error) {
	d, err := display.NewEbitenDisplay(cfg.Title, info.Width, info.Height, cfg.Scale)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func openSource(path string) (cli.Source, error) {
	src, err := capture.Open(path)
	if err != nil {
		return nil, err
	}
	return src, nil
}
