package codec

import (
	"errors"
	"fmt"
)

// FormatKind identifies the text format that failed validation.
type FormatKind int

const (
	HexFormat FormatKind = iota + 1
	Base64Format
)

func (k FormatKind) String() string {
	switch k {
	case HexFormat:
		return "hex"
	case Base64Format:
		return "base64"
	default:
		return fmt.Sprintf("FormatKind(%d)", int(k))
	}
}

var (
	ErrOddLength    = errors.New("hex string must be of even length")
	ErrInvalidDigit = errors.New("invalid hex digit")
)

// FormatError is returned when input text doesn't conform to the expected format.
type FormatError struct {
	Kind FormatKind
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	return e.Msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func hexError(cause error, format string, args ...any) *FormatError {
	return &FormatError{
		Kind: HexFormat,
		Msg:  fmt.Sprintf("%v: %s", cause, fmt.Sprintf(format, args...)),
		Err:  cause,
	}
}
