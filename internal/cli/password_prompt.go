package cli

import (
	"bytes"
	"errors"
	"io"
)

// readLine reads up to the next newline one byte at a time, so consecutive
// prompts on a piped stdin do not lose buffered input.
func readLine(reader io.Reader) ([]byte, error) {
	var line []byte
	next := make([]byte, 1)
	for {
		n, err := reader.Read(next)
		if n > 0 {
			if next[0] == '\n' {
				break
			}
			line = append(line, next[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return bytes.TrimRight(line, "\r"), nil
}
