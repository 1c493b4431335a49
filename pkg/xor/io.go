package xor

import (
	"io"
)

// Reader extends io.Reader, but also provides a way to reuse a key with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader and rewind the key to its initial offset.
	Reset(source io.Reader)
}

// Writer extends io.Writer, but also provides a way to reuse a key with a different target.
type Writer interface {
	io.Writer
	// Reset will use the provided io.Writer and rewind the key to its initial offset.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	scr    *xorScreen
}

// NewReader constructs a Reader that XORs every byte read from r with key, starting at offset.
func NewReader(r io.Reader, key []byte, offset ...int) (Reader, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &reader{source: r, scr: scr}, nil
}

// NewSingleByteReader is NewReader with a one byte key, which can't fail.
func NewSingleByteReader(r io.Reader, key byte) Reader {
	scr, _ := newXorScreen([]byte{key})
	return &reader{source: r, scr: scr}
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	r.scr.screenTo(out[:n], out[:n])
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.scr.reset()
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	scr    *xorScreen
	buf    []byte
}

// NewWriter constructs a Writer that XORs every byte with key, starting at offset, before writing it to target.
func NewWriter(target io.Writer, key []byte, offset ...int) (Writer, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &writer{target: target, scr: scr}, nil
}

func (w *writer) Write(in []byte) (n int, err error) {
	if cap(w.buf) < len(in) {
		w.buf = make([]byte, len(in))
	}
	buf := w.buf[:len(in)]
	w.scr.screenTo(buf, in)
	return w.target.Write(buf)
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.scr.reset()
}
