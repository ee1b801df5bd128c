// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"syscall"
)

// ErrNotRunning is returned by Send when nothing listens on the socket.
var ErrNotRunning = errors.New("command: connection refused, is inkreplay running?")

// Send delivers one command to the server listening at path.
func Send(ctx context.Context, path string, c Command) error {
	msg, err := c.MarshalText()
	if err != nil {
		return err
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w (%s)", ErrNotRunning, path)
		}
		return fmt.Errorf("command: dial %s: %w", path, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}
	if _, err := conn.Write(msg); err != nil {
		return fmt.Errorf("command: send %q: %w", c.String(), err)
	}
	return nil
}
