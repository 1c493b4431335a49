package xor

// frequentLetters marks the lowercase letters most common in English text.
var frequentLetters = [256]bool{
	'e': true, 't': true, 'a': true, 'i': true, 'o': true,
	'n': true, 's': true, 'h': true, 'r': true,
}

// Score counts the bytes of data that become a frequent English letter when XORed with key.
func Score(data []byte, key byte) int {
	var n int
	for _, b := range data {
		if frequentLetters[b^key] {
			n++
		}
	}
	return n
}

// RecoverKey returns the single-byte key most likely to have produced data from English text.
// Every key is scored in ascending order, and a later key only wins with a strictly greater score.
// That means empty input, or input where no key scores above zero, returns key 0.
func RecoverKey(data []byte) byte {
	var (
		best int
		key  byte
	)
	// An int loop variable is used since a byte would overflow before exiting.
	for k := 0; k <= 0xff; k++ {
		if n := Score(data, byte(k)); n > best {
			best = n
			key = byte(k)
		}
	}
	return key
}
