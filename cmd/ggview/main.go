// Command ggview shows a 3d model or image in three views that share one
// GPU device.
//
// Usage:
//
//	ggview [flags] FILE
//
// Run ggview --help for the flags.
package main

import (
	"context"
	"os"
	"os/signal"

	_ "github.com/gogpu/ggview/backend/wgpu"
	"github.com/gogpu/ggview/host"
	"github.com/gogpu/ggview/host/desktop"
	"github.com/gogpu/ggview/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], cli.Env{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Desktop: openDesktop,
	})
	stop()
	os.Exit(code)
}

func openDesktop(title string, width, height int, fullscreen bool) (host.ViewContainer, error) {
	return desktop.NewContainer(desktop.Config{
		Title:      title,
		Width:      width,
		Height:     height,
		Fullscreen: fullscreen,
	})
}
