// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/yaz0

package yaz0

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf with %w when values are needed.
var (
	// ErrFormat is returned when the input does not start with a Yaz0 header.
	ErrFormat = errors.New("not a yaz0 stream")
	// ErrCorruptData is returned when a token would read or write outside the valid output region,
	// or when the body ends before the declared size is produced.
	ErrCorruptData = errors.New("corrupt yaz0 data")
	// ErrInvalidChunkSize is returned when CompressOptions.ChunkSize is not a positive power of two.
	ErrInvalidChunkSize = errors.New("chunk size must be a positive power of two")
	// ErrShortBuffer is returned when a caller-provided destination cannot hold the result.
	ErrShortBuffer = errors.New("destination buffer too small")
	// ErrInputTooLarge is returned when the input length does not fit the 32-bit size field.
	ErrInputTooLarge = errors.New("input exceeds 4 GiB yaz0 size limit")
	// ErrNilReader is returned when DecompressFromReader is given a nil reader.
	ErrNilReader = errors.New("reader is nil")
)
