//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package driver

import "golang.org/x/term"

type termState struct {
	state *term.State
}

func getTermState(fd int) (*termState, error) {
	state, err := term.GetState(fd)
	if err != nil {
		return nil, err
	}
	return &termState{state: state}, nil
}

func setTermState(fd int, state *termState) error {
	return term.Restore(fd, state.state)
}

// enterInputMode falls back to raw mode where termios is not available.
func enterInputMode(fd int) error {
	_, err := term.MakeRaw(fd)
	return err
}
