// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/yaz0

package yaz0

import "fmt"

// appendBackRef replays a back-reference: length bytes starting lookback bytes before the
// end of out are appended to out. size is the declared payload length; nothing is written
// unless the whole copy stays within it.
// When lookback < length the ranges overlap and each byte must be visible to the next
// read (a lookback of 1 repeats one byte), so that case copies byte-by-byte.
func appendBackRef(out []byte, lookback, length, size int) ([]byte, error) {
	pos := len(out)
	if length < MinMatch || length > MaxMatch {
		return out, fmt.Errorf("%w: match length %d at output offset %d", ErrCorruptData, length, pos)
	}

	if lookback < 1 || lookback > pos {
		return out, fmt.Errorf("%w: lookback %d exceeds output offset %d", ErrCorruptData, lookback, pos)
	}

	if pos+length > size {
		return out, fmt.Errorf("%w: copy of %d bytes at offset %d overruns declared size %d",
			ErrCorruptData, length, pos, size)
	}

	src := pos - lookback
	if lookback >= length {
		return append(out, out[src:src+length]...), nil
	}

	for i := 0; i < length; i++ {
		out = append(out, out[src+i])
	}

	return out, nil
}
