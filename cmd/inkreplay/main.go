// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command inkreplay drives a headless drawing session.
//
// It replays a recorded input script, optionally keeps serving control
// commands on the unix socket (see inkctl), and writes the final drawing to
// a PNG file:
//
//	inkreplay -png out.png session.yaml
//	inkreplay -listen -png out.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/command"
	"github.com/gogpu/ink/config"
	"github.com/gogpu/ink/drawing"
	"github.com/gogpu/ink/overlay"
	"github.com/gogpu/ink/render"
)

const frameInterval = 16 * time.Millisecond

type options struct {
	script      string
	png         string
	listen      bool
	socket      string
	config      string
	width       uint
	height      uint
	premultiply bool
	verbose     bool
}

func main() {
	var o options
	flag.StringVar(&o.png, "png", "", "write the final frame to this PNG file")
	flag.BoolVar(&o.listen, "listen", false, "serve control commands until exit")
	flag.StringVar(&o.socket, "socket", "", "control socket (default from config, then $XDG_RUNTIME_DIR/ink.sock)")
	flag.StringVar(&o.config, "config", "", "config file (default ~/.config/ink/config.yaml)")
	flag.UintVar(&o.width, "width", 800, "surface width")
	flag.UintVar(&o.height, "height", 600, "surface height")
	flag.BoolVar(&o.premultiply, "premultiply", false, "composite with premultiplied alpha")
	flag.BoolVar(&o.verbose, "v", false, "verbose logging")
	flag.Parse()
	o.script = flag.Arg(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o); err != nil {
		ink.Logger().Error("inkreplay failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o options) error {
	if o.config == "" {
		if p, err := config.Path(); err == nil {
			o.config = p
		}
	}
	cfg, err := config.Load(o.config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "inkreplay: using default config:", err)
	}

	level, _ := cfg.Level()
	if o.verbose {
		level = slog.LevelDebug
	}
	ink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var script *Script
	if o.script != "" {
		if script, err = LoadScript(o.script); err != nil {
			return err
		}
		if script.Width != 0 && script.Height != 0 {
			o.width, o.height = uint(script.Width), uint(script.Height)
		}
	}

	engine := drawing.NewEngine(
		drawing.WithStrokeWidth(cfg.StrokeWidth),
		drawing.WithStrokeColor(cfg.Color()),
		drawing.WithPremultiply(o.premultiply),
	)
	target := render.NewRasterTarget(int(o.width), int(o.height))
	target.SetBufferSize(cfg.BufferSize)
	target.SetPremultiplied(o.premultiply)

	surface := &headlessSurface{width: uint32(o.width), height: uint32(o.height)}
	session, err := overlay.NewSession(surface, engine,
		overlay.WithMouseCursor(pointerCursor),
		overlay.WithBatcher(render.NewBatcher(target)),
	)
	if err != nil {
		return err
	}

	exit := false
	if script != nil {
		if exit, err = Play(session, script); err != nil {
			return err
		}
		ink.Logger().Info("script replayed", "steps", len(script.Steps), "strokes", len(engine.Strokes()))
	}

	if o.listen && !exit {
		socket := o.socket
		if socket == "" {
			if socket, err = cfg.SocketPath(); err != nil {
				return err
			}
		}
		if err := serve(ctx, session, socket, o.config); err != nil {
			return err
		}
	}

	if err := session.Frame(); err != nil {
		return err
	}
	if o.png != "" {
		if err := target.SavePNG(o.png); err != nil {
			return err
		}
		ink.Logger().Info("frame saved", "path", o.png, "width", o.width, "height", o.height)
	}
	return nil
}

// serve runs the session loop: commands from the socket and from config
// reloads are applied as they arrive and a frame is rendered every
// frameInterval. It returns on an exit command or when ctx is canceled.
func serve(ctx context.Context, session *overlay.Session, socket, cfgPath string) error {
	srv, err := command.Listen(socket, session.Queue())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return srv.Serve(ctx) })

	if cfgPath != "" {
		w, err := config.NewWatcher(cfgPath, session.Queue())
		switch {
		case err == nil:
			g.Go(func() error { return w.Run(ctx) })
		case errors.Is(err, fs.ErrNotExist):
			ink.Logger().Debug("not watching config", "err", err)
		default:
			ink.Logger().Warn("not watching config", "err", err)
		}
	}

	g.Go(func() error {
		defer cancel()
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-session.Queue().Ready():
				if session.Tick() {
					ink.Logger().Info("exit requested")
					return nil
				}
			case <-ticker.C:
				if err := session.Frame(); err != nil {
					return err
				}
			}
		}
	})

	return g.Wait()
}
