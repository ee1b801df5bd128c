// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command inkctl sends a control command to a running overlay.
//
// Usage:
//
//	inkctl [-socket path] <command> [argument]
//
// Commands: toggle, undo, clear, clear_and_deactivate, stroke_width <px>,
// stroke_color <css-color>, exit.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/command"
	"github.com/gogpu/ink/config"
)

func main() {
	var (
		socket  = flag.String("socket", "", "control socket (default from config, then $XDG_RUNTIME_DIR/ink.sock)")
		cfgPath = flag.String("config", "", "config file (default ~/.config/ink/config.yaml)")
		timeout = flag.Duration("timeout", 2*time.Second, "send timeout")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <command> [argument]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	ink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*socket, *cfgPath, *timeout, flag.Args()); err != nil {
		ink.Logger().Error("inkctl failed", "err", err)
		os.Exit(1)
	}
}

func run(socket, cfgPath string, timeout time.Duration, args []string) error {
	cmd, err := command.Parse([]byte(strings.Join(args, " ")))
	if err != nil {
		return err
	}

	if socket == "" {
		if socket, err = socketPath(cfgPath); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ink.Logger().Debug("sending", "socket", socket, "cmd", cmd.String())
	return command.Send(ctx, socket, cmd)
}

func socketPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		p, err := config.Path()
		if err != nil {
			return command.DefaultSocketPath(), nil
		}
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		ink.Logger().Warn("ignoring config", "err", err)
	}
	return cfg.SocketPath()
}
