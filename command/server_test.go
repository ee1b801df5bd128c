// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func startServer(t *testing.T) (path string, q *Queue, stop func() error) {
	t.Helper()
	path = filepath.Join(t.TempDir(), SocketName)
	q = NewQueue()
	srv, err := Listen(path, q)
	if err != nil {
		t.Fatal(err)
	}
	if srv.Path() != path {
		t.Errorf("Path = %q, want %q", srv.Path(), path)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	return path, q, func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("Serve did not return after cancel")
			return nil
		}
	}
}

// waitCommand blocks until the queue holds a command.
func waitCommand(t *testing.T, q *Queue) Command {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		if cmds := q.Drain(); len(cmds) > 0 {
			return cmds[0]
		}
		select {
		case <-q.Ready():
		case <-deadline:
			t.Fatal("timed out waiting for a command")
		}
	}
}

func TestServerReceives(t *testing.T) {
	path, q, stop := startServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, want := range []Command{{Kind: Toggle}, SetStrokeWidth(3.5)} {
		if err := Send(ctx, path, want); err != nil {
			t.Fatalf("Send(%v): %v", want, err)
		}
		if got := waitCommand(t, q); got != want {
			t.Errorf("received %+v, want %+v", got, want)
		}
	}

	if err := stop(); err != nil {
		t.Errorf("Serve returned %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("socket file still exists after shutdown: %v", err)
	}
}

func TestServerDropsInvalid(t *testing.T) {
	path, q, stop := startServer(t)
	defer stop()

	conn, err := net.Dial("unix", path)
	if err != nil {
		t.Fatal(err)
	}
	conn.Write([]byte("stroke_width -1"))
	conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Send(ctx, path, Command{Kind: Undo}); err != nil {
		t.Fatal(err)
	}

	// Connections are handled concurrently, so wait until the valid command
	// arrives and check nothing else did.
	if got := waitCommand(t, q); got.Kind != Undo {
		t.Errorf("received %+v, want undo", got)
	}
	time.Sleep(50 * time.Millisecond)
	if rest := q.Drain(); len(rest) != 0 {
		t.Errorf("invalid message was queued: %+v", rest)
	}
}

func TestListenReplacesStaleSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), SocketName)
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	srv, err := Listen(path, NewQueue())
	if err != nil {
		t.Fatalf("Listen over stale file: %v", err)
	}
	srv.listener.Close()
}

func TestSendNotRunning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.sock")
	err := Send(context.Background(), path, Command{Kind: Toggle})
	if !errors.Is(err, ErrNotRunning) {
		t.Errorf("Send error = %v, want ErrNotRunning", err)
	}
}
