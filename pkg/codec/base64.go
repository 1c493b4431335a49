package codec

import "strings"

const padChar = '='

var base64Alphabet = [64]byte{
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
	'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
	'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '/',
}

// EncodedLen returns the length of the Base64 text for n input bytes, including padding.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// EncodeBase64 encodes data as padded Base64 text.
func EncodeBase64(data []byte) string {
	var sb strings.Builder
	sb.Grow(EncodedLen(len(data)))
	for len(data) > 0 {
		n := min(3, len(data))
		encodeGroup(&sb, data[:n])
		data = data[n:]
	}
	return sb.String()
}

// encodeGroup writes 4 characters for a group of 1 to 3 bytes.
// Missing bytes are treated as zero, and their characters are replaced with padding.
func encodeGroup(sb *strings.Builder, group []byte) {
	var a, b, c byte
	a = group[0]
	if len(group) > 1 {
		b = group[1]
	}
	if len(group) > 2 {
		c = group[2]
	}

	sb.WriteByte(base64Alphabet[a>>2])
	sb.WriteByte(base64Alphabet[(a&0x3)<<4|b>>4])
	if len(group) < 2 {
		sb.WriteByte(padChar)
		sb.WriteByte(padChar)
		return
	}
	sb.WriteByte(base64Alphabet[(b&0xf)<<2|c>>6])
	if len(group) < 3 {
		sb.WriteByte(padChar)
		return
	}
	sb.WriteByte(base64Alphabet[c&0x3f])
}

// HexToBase64 decodes the hex string and encodes the result as Base64.
// A decoding error is returned as-is.
func HexToBase64(text string) (string, error) {
	data, err := DecodeHex(text)
	if err != nil {
		return "", err
	}
	return EncodeBase64(data), nil
}
