package yaz0

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func randomBytes(n int, seed int64) []byte {
	buf := make([]byte, n)
	rand.New(rand.NewSource(seed)).Read(buf)
	return buf
}

func roundTrip(t *testing.T, input []byte, opts *CompressOptions) []byte {
	t.Helper()

	enc, err := Compress(input, opts)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	dec, err := Decompress(enc)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}

	if !bytes.Equal(input, dec) {
		t.Fatalf("round-trip mismatch: in=%d dec=%d", len(input), len(dec))
	}

	return enc
}

func TestRoundTrip(t *testing.T) {
	cases := map[string][]byte{
		"empty":      {},
		"nil":        nil,
		"one byte":   {0x42},
		"two bytes":  {0x42, 0x42},
		"text":       []byte("hello world, hello yaz0, hello world"),
		"repetitive": bytes.Repeat([]byte("abcdefgh"), 1000),
		"run":        bytes.Repeat([]byte{0xAA}, 10000),
		"random":     randomBytes(20000, 1),
		"mixed":      append(randomBytes(3000, 2), bytes.Repeat([]byte("xyz"), 3000)...),
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, input, nil)
		})
	}
}

func TestRoundTripChunkSizes(t *testing.T) {
	input := append(randomBytes(5000, 3), bytes.Repeat([]byte("chunked payload "), 400)...)
	for _, size := range []int{1, 2, 8, 64, 512, 2048, 4096, 16384} {
		t.Run(fmt.Sprintf("ChunkSize=%d", size), func(t *testing.T) {
			roundTrip(t, input, &CompressOptions{ChunkSize: size})
		})
	}
}

func TestChunkBoundaries(t *testing.T) {
	pattern := []byte("boundary-check-0123456789")
	for _, n := range []int{
		DefaultChunkSize - 1, DefaultChunkSize, DefaultChunkSize + 1,
		2*DefaultChunkSize - 1, 2 * DefaultChunkSize, 2*DefaultChunkSize + 1,
	} {
		t.Run(fmt.Sprintf("Len=%d", n), func(t *testing.T) {
			input := bytes.Repeat(pattern, n/len(pattern)+1)[:n]
			roundTrip(t, input, nil)

			random := randomBytes(n, int64(n))
			roundTrip(t, random, nil)
		})
	}
}

func TestZerosCompressWell(t *testing.T) {
	input := make([]byte, 4096)
	enc := roundTrip(t, input, nil)

	body := len(enc) - HeaderSize
	if body > 256 {
		t.Fatalf("4096 zero bytes compressed to %d body bytes, want far fewer", body)
	}
}

func TestCompressedSizeWithinBound(t *testing.T) {
	for _, size := range []int{1, 16, 2048} {
		input := randomBytes(10000, int64(size))
		enc := roundTrip(t, input, &CompressOptions{ChunkSize: size})
		if bound := MaxCompressedLen(len(input)); len(enc) > bound {
			t.Fatalf("ChunkSize=%d: len=%d exceeds MaxCompressedLen=%d", size, len(enc), bound)
		}
	}
}

func TestCompressDeterministicAcrossWorkers(t *testing.T) {
	input := append(randomBytes(9000, 4), bytes.Repeat([]byte("workers"), 2000)...)

	single, err := Compress(input, &CompressOptions{ChunkSize: 1024, Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := Compress(input, &CompressOptions{ChunkSize: 1024, Workers: 8})
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(single, parallel) {
		t.Fatal("output depends on worker count")
	}
}

func TestCompressInvalidChunkSize(t *testing.T) {
	for _, size := range []int{-1, 3, 100, 3000} {
		_, err := Compress([]byte("data"), &CompressOptions{ChunkSize: size})
		if !errors.Is(err, ErrInvalidChunkSize) {
			t.Fatalf("ChunkSize=%d: want ErrInvalidChunkSize, got %v", size, err)
		}
	}
}

func TestCompressInto(t *testing.T) {
	input := bytes.Repeat([]byte("into the buffer "), 500)

	want, err := Compress(input, nil)
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]byte, MaxCompressedLen(len(input)))
	n, err := CompressInto(dst, input, nil)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(dst[:n], want) {
		t.Fatal("CompressInto output differs from Compress")
	}

	_, err = CompressInto(make([]byte, 4), input, nil)
	if !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("want ErrShortBuffer, got %v", err)
	}
}

func TestCompressContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CompressContext(ctx, randomBytes(8192, 5), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestMaxCompressedLen(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{0, HeaderSize},
		{1, HeaderSize + 2},
		{8, HeaderSize + 9},
		{9, HeaderSize + 9 + 2},
		{4096, HeaderSize + 4096 + 512},
	}

	for _, tc := range cases {
		if got := MaxCompressedLen(tc.n); got != tc.want {
			t.Fatalf("MaxCompressedLen(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestCompressGroupsSpanChunks(t *testing.T) {
	// One literal per chunk: both tokens share the first control byte.
	enc := roundTrip(t, []byte("ab"), &CompressOptions{ChunkSize: 1})
	if want := []byte{0xC0, 'a', 'b'}; !bytes.Equal(enc[HeaderSize:], want) {
		t.Fatalf("body = % x, want % x", enc[HeaderSize:], want)
	}

	// First chunk ends after five tokens; the second chunk fills the same group.
	enc = roundTrip(t, []byte("abcdabcdxyz"), &CompressOptions{ChunkSize: 8})
	if want := []byte{0xF7, 'a', 'b', 'c', 'd', 0x20, 0x03, 'x', 'y', 'z'}; !bytes.Equal(enc[HeaderSize:], want) {
		t.Fatalf("body = % x, want % x", enc[HeaderSize:], want)
	}
}

func TestRoundTripOddLengthsSmallChunks(t *testing.T) {
	for _, size := range []int{1, 4, 8, 32} {
		for _, n := range []int{7, 9, 63, 255, 1901} {
			input := randomBytes(n, int64(n*size))
			// Repeats give most chunks a mix of literals and back-references.
			input = append(input, input[:n/2]...)
			roundTrip(t, input, &CompressOptions{ChunkSize: size})
		}
	}
}
