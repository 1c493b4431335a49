/*
Package codec converts between hexadecimal text, raw byte slices, and Base64 text.

Hex decoding is strict: the input must have an even number of characters, and every character must be a hex digit in either case.
Failures are reported as a *FormatError, which carries the kind of format that was violated along with a message.
The underlying cause is available with errors.Is, using ErrOddLength or ErrInvalidDigit.

Base64 encoding uses the standard alphabet with '=' padding and no line wrapping.
Only encoding is provided.
*/
package codec
