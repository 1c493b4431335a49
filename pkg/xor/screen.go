package xor

import (
	"errors"
	"fmt"
)

var ErrEmptyKey = errors.New("cannot use empty key")

// xorScreen applies a key to a stream of bytes, starting at an offset within the key and wrapping at the end.
type xorScreen struct {
	key  []byte
	init int
	cur  int
}

func newXorScreen(key []byte, offset ...int) (*xorScreen, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	s := &xorScreen{
		key: append([]byte(nil), key...),
	}
	if len(offset) > 0 {
		if offset[0] < 0 || offset[0] >= len(key) {
			return nil, fmt.Errorf("offset %d out of range for provided key of len %d", offset[0], len(key))
		}
		s.init = offset[0]
		s.cur = s.init
	}
	return s, nil
}

func (s *xorScreen) screen(b byte) byte {
	b ^= s.key[s.cur]
	s.cur = (s.cur + 1) % len(s.key)
	return b
}

// screenTo writes the screened form of src to dst, which must be at least as long as src.
func (s *xorScreen) screenTo(dst, src []byte) {
	for i, b := range src {
		dst[i] = s.screen(b)
	}
}

func (s *xorScreen) reset() {
	s.cur = s.init
}
