package xor

import (
	"errors"
	"fmt"
)

var ErrLengthMismatch = errors.New("buffers must have equal length")

// Buffers returns a new slice where each byte is a[i] ^ b[i].
// If a and b differ in length then ErrLengthMismatch is returned, rather than dropping the trailing bytes of the longer slice.
func Buffers(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}
