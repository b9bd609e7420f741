package yaz0

import (
	"errors"
	"io"
)

// sliceByteReader serves a Yaz0 body that is already in memory.
type sliceByteReader struct {
	data []byte // Whole stream, header included.
	pos  int    // Next byte to hand out.
}

// countingByteReader wraps a stream reader and counts the bytes the decoder took.
type countingByteReader struct {
	base  io.ByteReader
	count int64
}

// ReadByte reads the next byte or returns io.EOF at the end of the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// ReadByte reads a byte from the underlying reader and counts it.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}

// readHeaderBytes fills buf from r. A short stream returns io.ErrUnexpectedEOF,
// or io.EOF if nothing was read at all.
func readHeaderBytes(r io.ByteReader, buf []byte) error {
	for i := range buf {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && i > 0 {
				return io.ErrUnexpectedEOF
			}

			return err
		}
		buf[i] = b
	}

	return nil
}
