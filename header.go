// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/yaz0

package yaz0

import (
	"encoding/binary"
	"fmt"
)

// Header is the fixed 16-byte prefix of a Yaz0 stream.
type Header struct {
	// UncompressedSize is the exact length of the decoded payload.
	UncompressedSize uint32
}

// IsYaz0 reports whether src starts with the Yaz0 magic.
func IsYaz0(src []byte) bool {
	return len(src) >= len(Magic) && string(src[:len(Magic)]) == Magic
}

// ReadHeader parses and validates the header at the start of src.
func ReadHeader(src []byte) (Header, error) {
	if !IsYaz0(src) {
		return Header{}, fmt.Errorf("%w: bad magic", ErrFormat)
	}

	if len(src) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header truncated at %d bytes", ErrFormat, len(src))
	}

	return Header{UncompressedSize: binary.BigEndian.Uint32(src[4:8])}, nil
}

// PutHeader writes a header declaring size into dst[:HeaderSize]. Reserved bytes are zeroed.
// It panics if dst is shorter than HeaderSize.
func PutHeader(dst []byte, size uint32) {
	_ = dst[HeaderSize-1]
	copy(dst, Magic)
	binary.BigEndian.PutUint32(dst[4:8], size)
	clear(dst[8:HeaderSize])
}

// AppendHeader appends a header declaring size to dst.
func AppendHeader(dst []byte, size uint32) []byte {
	dst = append(dst, Magic...)
	dst = binary.BigEndian.AppendUint32(dst, size)

	return append(dst, make([]byte, HeaderSize-8)...)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h Header) MarshalBinary() ([]byte, error) {
	return AppendHeader(make([]byte, 0, HeaderSize), h.UncompressedSize), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *Header) UnmarshalBinary(data []byte) error {
	parsed, err := ReadHeader(data)
	if err != nil {
		return err
	}

	*h = parsed

	return nil
}
