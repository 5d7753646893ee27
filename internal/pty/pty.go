// Package pty starts child processes on a pseudo-terminal so that their
// output is line buffered the way it is on an interactive terminal.
package pty

import (
	"errors"
	"io"
	"syscall"
)

// Closed reports whether err, returned by a read from the master side,
// means the child side is gone. Linux reports EIO instead of EOF once the
// last slave descriptor is closed.
func Closed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, syscall.EIO)
}
