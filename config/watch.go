// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/command"
)

// DefaultWatchDebounce is how long a Watcher waits for writes to settle.
const DefaultWatchDebounce = 200 * time.Millisecond

// Watcher reloads a configuration file when it changes and pushes the
// resulting style commands onto a queue.
type Watcher struct {
	// Debounce is the quiet period after the last file event before the
	// file is reloaded.
	Debounce time.Duration

	watcher *fsnotify.Watcher
	path    string
	queue   *command.Queue
	current Config
}

// NewWatcher starts watching the directory of path. The directory is
// watched rather than the file so that editors replacing the file by rename
// are noticed. A leading ~ in path is expanded to the home directory.
func NewWatcher(path string, queue *command.Queue) (*Watcher, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	current, err := Load(abs)
	if err != nil {
		ink.Logger().Warn("config: using defaults", "err", err)
	}
	return &Watcher{
		Debounce: DefaultWatchDebounce,
		watcher:  fw,
		path:     abs,
		queue:    queue,
		current:  current,
	}, nil
}

// Run processes file events until ctx is canceled. It closes the watcher
// before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.Debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			ink.Logger().Warn("config: watch error", "err", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		ink.Logger().Warn("config: reload failed", "path", w.path, "err", err)
		return
	}
	cmds := cfg.Commands(w.current)
	w.current = cfg
	for _, c := range cmds {
		w.queue.Push(c)
	}
	ink.Logger().Info("config: reloaded", "path", w.path, "commands", len(cmds))
}

// Watch is NewWatcher followed by Run.
func Watch(ctx context.Context, path string, queue *command.Queue) error {
	w, err := NewWatcher(path, queue)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
