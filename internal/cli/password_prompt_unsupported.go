//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package cli

import (
	"errors"
	"os"
)

// Without a known terminal API the password would be echoed, so refuse.
func readPasswordNoEcho(_ *os.File) ([]byte, error) {
	return nil, errors.New("password prompt is not supported on this platform")
}
