package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/saylorsolutions/cryptokit/pkg/codec"
	"github.com/saylorsolutions/cryptokit/pkg/xor"
)

var ErrInvalidKey = errors.New("key must be a single hex encoded byte")

// Runner executes commands, writing results to Out and diagnostics to Log.
type Runner struct {
	Out io.Writer
	Log hclog.Logger
}

// Base64 writes the Base64 encoding of the hex input.
func (r *Runner) Base64(hexIn string) error {
	out, err := codec.HexToBase64(hexIn)
	if err != nil {
		return err
	}
	r.Log.Debug("Encoded input", "bytes", len(hexIn)/2, "chars", len(out))
	return r.println(out)
}

// Xor writes the hex encoded XOR of two hex inputs of the same length.
func (r *Runner) Xor(hexA, hexB string) error {
	a, err := codec.DecodeHex(hexA)
	if err != nil {
		return fmt.Errorf("first buffer: %w", err)
	}
	b, err := codec.DecodeHex(hexB)
	if err != nil {
		return fmt.Errorf("second buffer: %w", err)
	}
	out, err := xor.Buffers(a, b)
	if err != nil {
		return err
	}
	return r.println(codec.EncodeHex(out))
}

// Apply writes the hex encoded result of XORing the hex input with a single key byte.
func (r *Runner) Apply(hexIn, hexKey string) error {
	key, err := ParseKey(hexKey)
	if err != nil {
		return err
	}
	data, err := codec.DecodeHex(hexIn)
	if err != nil {
		return err
	}
	return r.println(codec.EncodeHex(xor.SingleByte(data, key)))
}

// Crack recovers the single-byte key of the hex input, and writes the key and the resulting plain text.
func (r *Runner) Crack(hexIn string) error {
	data, err := codec.DecodeHex(hexIn)
	if err != nil {
		return err
	}
	key := xor.RecoverKey(data)
	r.Log.Debug("Recovered key", "key", key, "score", xor.Score(data, key), "bytes", len(data))
	if _, err := fmt.Fprintf(r.Out, "key: %02x\n", key); err != nil {
		return err
	}
	return r.println(string(xor.SingleByte(data, key)))
}

// Screen copies in to r.Out, XORing every byte with the hex encoded key.
func (r *Runner) Screen(in io.Reader, hexKey string) error {
	key, err := ParseKey(hexKey)
	if err != nil {
		return err
	}
	n, err := io.Copy(r.Out, xor.NewSingleByteReader(in, key))
	if err != nil {
		return err
	}
	r.Log.Debug("Screened input", "bytes", n)
	return nil
}

// GenKey writes a random hex encoded key byte.
func (r *Runner) GenKey() error {
	key, err := xor.GenKey()
	if err != nil {
		return err
	}
	return r.println(codec.EncodeHex([]byte{key}))
}

// ParseKey decodes a key given as exactly two hex digits.
func ParseKey(hexKey string) (byte, error) {
	key, err := codec.DecodeHex(hexKey)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(key) != 1 {
		return 0, fmt.Errorf("%w: got %d bytes", ErrInvalidKey, len(key))
	}
	return key[0], nil
}

func (r *Runner) println(s string) error {
	_, err := fmt.Fprintln(r.Out, s)
	return err
}
