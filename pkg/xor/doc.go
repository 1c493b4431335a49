/*
Package xor provides XOR primitives over byte slices, along with recovery of a single-byte XOR key from ciphertext that is believed to be English text.

Note that XOR with a short key is NOT encryption in any meaningful sense, since it is easily reversed, and RecoverKey demonstrates exactly that.

# Operations:

  - Buffers combines two equal-length slices byte by byte. Slices of different lengths are rejected with ErrLengthMismatch instead of being truncated.
  - SingleByte applies the same key byte to every byte of a slice. Applying it twice with the same key yields the original slice.
  - RecoverKey tries all 256 keys and picks the one that produces the most common lowercase English letters (e, t, a, i, o, n, s, h, r).
    When two keys score the same, the lower key wins. This is a heuristic, so short or non-text input may produce a wrong key, but it never fails.

# Streaming:

NewReader and NewWriter apply a key to every byte that passes through an io.Reader or io.Writer.
Once a key byte is used, the screen moves to the next byte in the key, wrapping around like a ring buffer.
A one byte key is the streaming equivalent of SingleByte.
*/
package xor
