package xor

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenKey(t *testing.T) {
	seen := map[byte]bool{}
	for i := 0; i < 64; i++ {
		key, err := GenKey()
		assert.NoError(t, err)
		seen[key] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestGenKey_Neg(t *testing.T) {
	orig := rand.Reader
	defer func() {
		rand.Reader = orig
	}()
	rand.Reader = bytes.NewBuffer(nil)

	_, err := GenKey()
	assert.Error(t, err)
}
