//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// readPasswordNoEcho turns terminal echo off while reading one line. When
// stdin is not a terminal the line is read as is.
func readPasswordNoEcho(stdin *os.File) ([]byte, error) {
	if stdin == nil {
		return nil, errors.New("stdin unavailable")
	}

	fd := int(stdin.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if errors.Is(err, unix.ENOTTY) || errors.Is(err, unix.ENODEV) {
		return readLine(stdin)
	}
	if err != nil {
		return nil, err
	}
	original := *termios
	silenced := original
	silenced.Lflag &^= unix.ECHO

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &silenced); err != nil {
		return nil, err
	}
	defer func() {
		_ = unix.IoctlSetTermios(fd, ioctlSetTermios, &original)
	}()

	return readLine(stdin)
}
