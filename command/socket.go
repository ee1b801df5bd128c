// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package command

import (
	"os"
	"path/filepath"
)

// SocketName is the file name of the control socket.
const SocketName = "ink.sock"

// DefaultSocketPath returns $XDG_RUNTIME_DIR/ink.sock, or a path in the
// temporary directory when XDG_RUNTIME_DIR is unset.
func DefaultSocketPath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, SocketName)
}
