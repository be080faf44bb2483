package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/assets"
	"github.com/gogpu/ggview/backend"
	"github.com/gogpu/ggview/engine"
	"github.com/gogpu/ggview/host"
)

// ErrNoDesktop is returned for an on-screen run when the command was built
// without a desktop host.
var ErrNoDesktop = errors.New("cli: no desktop host available, use --headless")

func run(ctx context.Context, s settings, args []string, env Env) error {
	level := s.LogLevel
	if s.APIDump && level > slog.LevelDebug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: level}))
	ggview.SetLogger(logger)

	if len(args) == 0 {
		return &exitError{code: ExitFailure, msg: MsgNoPath}
	}

	cfg, err := assets.LoadConfig()
	if err != nil {
		return usageError(err)
	}
	scene, err := assets.NewLoader(cfg, 1).Load(args[0])
	if err != nil {
		return &exitError{code: ExitFailure, msg: MsgBadScene, err: err}
	}

	b, err := backend.Select(s.Backend)
	if err != nil {
		return failure(err)
	}

	traits := engine.NewTraits()
	traits.WindowTitle = ContainerTitle
	traits.Width, traits.Height = s.Width, s.Height
	traits.Fullscreen = s.Fullscreen
	traits.Debug = s.Debug
	traits.APIDump = s.APIDump
	traits.Samples = s.Samples

	viewer := engine.NewViewer()
	viewer.SetContinuousUpdate(!s.EventDriven)
	viewer.SetInterval(s.Interval)

	container, err := openContainer(s, env)
	if err != nil {
		return failure(err)
	}

	area, err := ggview.NewArea(
		ggview.WithBackend(b),
		ggview.WithContainer(container),
		ggview.WithTraits(traits),
		ggview.WithViewer(viewer),
		ggview.WithMaxFrames(s.Frames),
	)
	if err != nil {
		return failure(err)
	}
	defer area.Close()

	for _, title := range viewTitles {
		if _, err := area.AddView(scene, title); err != nil {
			return failure(err)
		}
	}

	logger.Info("ggview: starting", "file", args[0], "backend", b.Name(),
		"headless", s.Headless, "continuous", !s.EventDriven, "interval", viewer.Interval())
	if err := area.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return failure(err)
	}

	if s.Output != "" {
		if err := writeSnapshot(area.View(0), s.Output); err != nil {
			return failure(err)
		}
		logger.Info("ggview: snapshot written", "file", s.Output)
	}
	return nil
}

func openContainer(s settings, env Env) (host.ViewContainer, error) {
	if s.Headless {
		return host.NewHeadless(host.HeadlessConfig{
			Title:  ContainerTitle,
			Width:  s.Width,
			Height: s.Height,
		})
	}
	if env.Desktop == nil {
		return nil, ErrNoDesktop
	}
	return env.Desktop(ContainerTitle, s.Width, s.Height, s.Fullscreen)
}

// writeSnapshot encodes the last frame presented to v's host as PNG.
func writeSnapshot(v *ggview.View, path string) error {
	if v == nil {
		return fmt.Errorf("snapshot: %w", ggview.ErrNoViews)
	}
	src, ok := v.Adapter.Host().(interface{ Frame() *image.RGBA })
	if !ok {
		return fmt.Errorf("snapshot: host of %q keeps no frames", v.Title)
	}
	frame := src.Frame()
	if frame == nil {
		return fmt.Errorf("snapshot: %q has not presented a frame", v.Title)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return f.Close()
}
