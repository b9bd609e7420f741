package yaz0

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
)

// readBufferSize is the initial output capacity when the body length is unknown.
const readBufferSize = 64 << 10

// Decompress decodes a Yaz0 stream into a new buffer of exactly the declared size.
// Bytes after the last token are ignored.
func Decompress(src []byte) ([]byte, error) {
	size, err := checkedSize(src)
	if err != nil {
		return nil, err
	}

	out, err := decodeBody(&sliceByteReader{data: src, pos: HeaderSize}, make([]byte, 0, size), size)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DecompressInto decodes a Yaz0 stream into caller-owned dst and returns the decoded length.
// dst must hold at least the declared size; bytes of dst past that length are left untouched.
func DecompressInto(src, dst []byte) (int, error) {
	size, err := checkedSize(src)
	if err != nil {
		return 0, err
	}

	if len(dst) < size {
		return 0, fmt.Errorf("%w: need=%d have=%d", ErrShortBuffer, size, len(dst))
	}

	// Capacity is capped at size so appends stay inside dst.
	if _, err := decodeBody(&sliceByteReader{data: src, pos: HeaderSize}, dst[:0:size], size); err != nil {
		return 0, err
	}

	return size, nil
}

// maxDecodedLen is the most output n body bytes can produce: an extended
// back-reference yields MaxMatch bytes from 3 payload bytes, and nothing yields more.
func maxDecodedLen(n int) uint64 {
	if n <= 0 {
		return 0
	}

	return uint64(n) * (MaxMatch / 3)
}

// checkedSize returns the declared size of src after rejecting sizes its body cannot reach.
func checkedSize(src []byte) (int, error) {
	size, err := DecompressedSize(src)
	if err != nil {
		return 0, err
	}

	if body := len(src) - HeaderSize; uint64(size) > maxDecodedLen(body) {
		return 0, fmt.Errorf("%w: declared size %d unreachable from %d body bytes", ErrCorruptData, size, body)
	}

	return size, nil
}

// DecompressFromReader decodes one Yaz0 stream from r and returns the number of bytes consumed.
// Reading stops right after the token that completes the payload, so r may carry more data.
// If r is not an io.ByteReader it is buffered and may be read past that point.
func DecompressFromReader(r io.Reader) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	counter := &countingByteReader{base: byteReader}
	var raw [HeaderSize]byte
	if err := readHeaderBytes(counter, raw[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, counter.count, fmt.Errorf("%w: header truncated at %d bytes", ErrFormat, counter.count)
		}

		return nil, counter.count, err
	}

	size, err := DecompressedSize(raw[:])
	if err != nil {
		return nil, counter.count, err
	}

	// The body length is unknown here, so the output grows as tokens arrive.
	out, err := decodeBody(counter, make([]byte, 0, min(size, readBufferSize)), size)
	if err != nil {
		return nil, counter.count, err
	}

	return out, counter.count, nil
}

// DecompressedSize validates the header of src and returns the declared payload length.
func DecompressedSize(src []byte) (int, error) {
	h, err := ReadHeader(src)
	if err != nil {
		return 0, err
	}

	if uint64(h.UncompressedSize) > math.MaxInt {
		return 0, fmt.Errorf("%w: declared size %d", ErrInputTooLarge, h.UncompressedSize)
	}

	return int(h.UncompressedSize), nil
}

// decodeBody replays the token stream from r, appending to out until size bytes are produced.
func decodeBody(r io.ByteReader, out []byte, size int) ([]byte, error) {
	// Read a body byte; running out of input before size is reached means the stream is truncated.
	readByte := func() (byte, error) {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("%w: unexpected end of input at output offset %d of %d",
					ErrCorruptData, len(out), size)
			}

			return 0, err
		}

		return b, nil
	}

	var flagByte byte
	bitsLeft := 0
	for len(out) < size {
		if bitsLeft == 0 {
			b, err := readByte()
			if err != nil {
				return nil, err
			}
			flagByte = b
			bitsLeft = FlagBits
		}

		// Most significant bit first: 1 = literal, 0 = back-reference.
		if flagByte&0x80 != 0 {
			b, err := readByte()
			if err != nil {
				return nil, err
			}

			out = append(out, b)
		} else {
			b1, err := readByte()
			if err != nil {
				return nil, err
			}
			b2, err := readByte()
			if err != nil {
				return nil, err
			}

			lookback := (int(b1&0x0F)<<8 | int(b2)) + 1
			length := int(b1 >> 4)
			if length == 0 {
				b3, err := readByte()
				if err != nil {
					return nil, err
				}
				length = int(b3) + extendedBase
			} else {
				length += 2
			}

			if out, err = appendBackRef(out, lookback, length, size); err != nil {
				return nil, err
			}
		}

		flagByte <<= 1
		bitsLeft--
	}

	return out, nil
}
