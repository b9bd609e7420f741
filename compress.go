// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/yaz0

package yaz0

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MaxCompressedLen returns the largest stream Compress can produce for an n-byte input,
// header included: every token a literal plus one control byte per FlagBits tokens.
// The bound does not depend on the chunk size because groups continue across chunks.
func MaxCompressedLen(n int) int {
	return HeaderSize + n + (n+FlagBits-1)/FlagBits
}

// Compress compresses src into a new Yaz0 stream. Options nil means DefaultCompressOptions().
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	return CompressContext(context.Background(), src, opts)
}

// CompressContext is Compress with cancellation checked between chunks.
func CompressContext(ctx context.Context, src []byte, opts *CompressOptions) ([]byte, error) {
	chunks, err := compressChunks(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	defer releaseChunks(chunks)

	out := make([]byte, 0, HeaderSize+encodedLen(chunks))
	out = AppendHeader(out, uint32(len(src))) // #nosec G115 -- bounded by MaxInputSize

	return joinChunks(out, chunks), nil
}

// CompressInto compresses src into dst and returns the number of bytes written.
// A dst of MaxCompressedLen(len(src)) bytes always suffices;
// smaller buffers fail with ErrShortBuffer when the stream does not fit.
func CompressInto(dst, src []byte, opts *CompressOptions) (int, error) {
	chunks, err := compressChunks(context.Background(), src, opts)
	if err != nil {
		return 0, err
	}
	defer releaseChunks(chunks)

	total := HeaderSize + encodedLen(chunks)
	if len(dst) < total {
		return 0, fmt.Errorf("%w: need=%d have=%d", ErrShortBuffer, total, len(dst))
	}

	PutHeader(dst, uint32(len(src))) // #nosec G115 -- bounded by MaxInputSize

	// Capacity is capped at total so appends stay inside dst.
	return len(joinChunks(dst[:HeaderSize:total], chunks)), nil
}

// joinChunks packs chunk tokens into groups in chunk order and appends them to out.
// Only the final group of the stream may be partially filled.
func joinChunks(out []byte, chunks []*encodedChunk) []byte {
	w := groupWriter{out: out}
	for _, c := range chunks {
		w.writeChunk(c)
	}

	return w.out
}

// compressChunks tokenizes every chunk of src concurrently. The result is indexed by chunk number.
func compressChunks(ctx context.Context, src []byte, opts *CompressOptions) ([]*encodedChunk, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	chunkSize, err := opts.chunkSize()
	if err != nil {
		return nil, err
	}

	if uint64(len(src)) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, len(src))
	}

	numChunks := (len(src) + chunkSize - 1) / chunkSize
	chunks := make([]*encodedChunk, numChunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for idx := 0; idx < numChunks; idx++ {
		idx := idx
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			lo := idx * chunkSize
			hi := min(lo+chunkSize, len(src))
			c := acquireChunkBuffer(hi - lo)
			encodeChunk(c, src[lo:hi])
			chunks[idx] = c

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		releaseChunks(chunks)
		return nil, err
	}

	return chunks, nil
}

// releaseChunks returns chunk token buffers to the pool.
func releaseChunks(chunks []*encodedChunk) {
	for i, c := range chunks {
		releaseChunkBuffer(c)
		chunks[i] = nil
	}
}
