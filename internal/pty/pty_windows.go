package pty

import (
	"errors"
	"os"
	"os/exec"
)

// Start is not supported on Windows; callers fall back to pipes.
func Start(_ *exec.Cmd, _, _ int) (*os.File, error) {
	return nil, errors.ErrUnsupported
}

func Resize(_ *os.File, _, _ int) error {
	return nil
}
