package xor

// SingleByte returns a new slice with every byte of data XORed with key.
func SingleByte(data []byte, key byte) []byte {
	// A one byte key is never empty, and no offset is given.
	scr, _ := newXorScreen([]byte{key})
	out := make([]byte, len(data))
	scr.screenTo(out, data)
	return out
}
