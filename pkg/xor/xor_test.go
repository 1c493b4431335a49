package xor

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	data, err := hex.DecodeString(s)
	require.NoError(t, err)
	return data
}

func TestBuffers(t *testing.T) {
	a := mustHex(t, "1c0111001f010100061a024b53535009181c")
	b := mustHex(t, "686974207468652062756c6c277320657965")

	out, err := Buffers(a, b)
	assert.NoError(t, err)
	assert.Equal(t, "746865206b696420646f6e277420706c6179", hex.EncodeToString(out))

	rev, err := Buffers(b, a)
	assert.NoError(t, err)
	assert.Equal(t, out, rev)
	assert.Equal(t, mustHex(t, "1c0111001f010100061a024b53535009181c"), a, "input must not be modified")
}

func TestBuffers_Empty(t *testing.T) {
	out, err := Buffers(nil, []byte{})
	assert.NoError(t, err)
	assert.Len(t, out, 0)
}

func TestBuffers_Neg(t *testing.T) {
	out, err := Buffers([]byte{0x1, 0x2}, []byte{0x1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, err.Error(), "2 != 1")
	assert.Nil(t, out)
}

func TestSingleByte(t *testing.T) {
	assert.Equal(t, []byte{0x0}, SingleByte([]byte{0x20}, 0x20))
	assert.Equal(t, []byte{0xf}, SingleByte([]byte{0x2f}, 0x20))
	assert.Equal(t, []byte{0xf, 0xf, 0xf}, SingleByte([]byte{0x2f, 0x2f, 0x2f}, 0x20))
	assert.Len(t, SingleByte(nil, 0x20), 0)
}

func TestSingleByte_Involution(t *testing.T) {
	data := []byte("A string with some text")
	for k := 0; k <= 0xff; k++ {
		once := SingleByte(data, byte(k))
		assert.Equal(t, data, SingleByte(once, byte(k)))
	}
	assert.Equal(t, "A string with some text", string(data))
}

func TestRecoverKey(t *testing.T) {
	ciphertext := mustHex(t, "1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736")
	key := RecoverKey(ciphertext)
	assert.Equal(t, byte(88), key)
	assert.Equal(t, "Cooking MC's like a pound of bacon", string(SingleByte(ciphertext, key)))
	assert.Equal(t, 14, Score(ciphertext, key))
}

func TestRecoverKey_Degenerate(t *testing.T) {
	assert.Equal(t, byte(0), RecoverKey(nil))
	assert.Equal(t, byte(0), RecoverKey([]byte{}))
	// Every frequent letter scores 1 for a single zero byte, so the lowest one wins.
	assert.Equal(t, byte('a'), RecoverKey([]byte{0x0}))
}

func TestScore(t *testing.T) {
	assert.Equal(t, 0, Score(nil, 0))
	assert.Equal(t, 9, Score([]byte("etaionshr"), 0))
	assert.Equal(t, 0, Score([]byte("ETAIONSHR"), 0))
	assert.Equal(t, 0, Score([]byte("bcdfgjklm"), 0))
}

func ExampleRecoverKey() {
	ciphertext := SingleByte([]byte("the rain in spain stays mainly on the plain"), 0x42)
	key := RecoverKey(ciphertext)
	fmt.Printf("%#x %s\n", key, SingleByte(ciphertext, key))
	// Output: 0x42 the rain in spain stays mainly on the plain
}
