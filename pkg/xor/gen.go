package xor

import (
	"crypto/rand"
	"fmt"
	"io"
)

// GenKey will generate a single-byte XOR key using the OS entropy pool.
func GenKey() (byte, error) {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return 0, fmt.Errorf("failed to read key byte: %w", err)
	}
	return buf[0], nil
}
