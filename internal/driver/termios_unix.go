//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package driver

import "golang.org/x/sys/unix"

type termState struct {
	termios unix.Termios
}

func getTermState(fd int) (*termState, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	return &termState{termios: *termios}, nil
}

func setTermState(fd int, state *termState) error {
	termios := state.termios
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, &termios)
}

// enterInputMode turns off line buffering and echo. Signals and output
// processing stay as they are.
func enterInputMode(fd int) error {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	termios.Lflag &^= unix.ICANON | unix.ECHO
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
}
