// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/ink"
)

const (
	// MaxMessageSize bounds how much of a connection is read.
	MaxMessageSize = 4096

	readTimeout = 5 * time.Second
)

// Server accepts control connections on a unix socket and pushes the
// decoded commands onto a Queue. Each connection carries one command and
// is read until the client closes it.
type Server struct {
	listener net.Listener
	path     string
	queue    *Queue
	closed   atomic.Bool
}

// Listen creates the socket at path, replacing a stale one.
func Listen(path string, queue *Queue) (*Server, error) {
	_ = os.Remove(path)

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("command: listen on %s: %w", path, err)
	}
	return &Server{listener: ln, path: path, queue: queue}, nil
}

// Path returns the socket path.
func (s *Server) Path() string { return s.path }

// Serve accepts connections until ctx is canceled, then closes the socket,
// waits for in-flight connections and removes the socket file.
func (s *Server) Serve(ctx context.Context) error {
	ink.Logger().Info("command: listening", "socket", s.path)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		s.closed.Store(true)
		s.listener.Close()
		return nil
	})
	g.Go(func() error {
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				if s.closed.Load() {
					return nil
				}
				return fmt.Errorf("command: accept: %w", err)
			}
			g.Go(func() error {
				s.handle(ctx, conn)
				return nil
			})
		}
	})

	err := g.Wait()
	_ = os.Remove(s.path)
	return err
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	msg, err := io.ReadAll(io.LimitReader(conn, MaxMessageSize))
	if err != nil {
		ink.Logger().Warn("command: read failed", "err", err)
		return
	}

	cmd, err := Parse(msg)
	if err != nil {
		ink.Logger().Warn("command: dropping message", "err", err)
		return
	}
	ink.Logger().Debug("command: received", "cmd", cmd.String())
	s.queue.Push(cmd)
}
