package codec

const hexDigits = "0123456789abcdef"

// DecodeHex decodes a hex string into bytes, with each pair of characters producing one byte.
// An empty string produces an empty slice.
// Nothing is returned besides the error if decoding fails at any point.
func DecodeHex(text string) ([]byte, error) {
	if len(text)%2 != 0 {
		return nil, hexError(ErrOddLength, "got %d characters", len(text))
	}
	out := make([]byte, len(text)/2)
	for i := 0; i < len(text); i += 2 {
		hi, ok := fromHexChar(text[i])
		if !ok {
			return nil, hexError(ErrInvalidDigit, "%q at offset %d", text[i], i)
		}
		lo, ok := fromHexChar(text[i+1])
		if !ok {
			return nil, hexError(ErrInvalidDigit, "%q at offset %d", text[i+1], i+1)
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}

// EncodeHex encodes bytes as a lowercase hex string.
func EncodeHex(data []byte) string {
	out := make([]byte, len(data)*2)
	for i, b := range data {
		out[i*2] = hexDigits[b>>4]
		out[i*2+1] = hexDigits[b&0xf]
	}
	return string(out)
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
