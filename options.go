package yaz0

import (
	"fmt"
	"runtime"
)

// CompressOptions configures Compress behavior.
type CompressOptions struct {
	// ChunkSize is the length of each independently compressed slice of the input.
	// Must be a power of two; 0 means DefaultChunkSize.
	ChunkSize int
	// Workers caps how many chunks are compressed at once. 0 or less means GOMAXPROCS.
	Workers int
}

// DefaultCompressOptions returns options for default behavior: 2048-byte chunks, one worker per CPU.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		ChunkSize: DefaultChunkSize,
	}
}

// chunkSize returns the effective chunk size or ErrInvalidChunkSize.
func (o *CompressOptions) chunkSize() (int, error) {
	size := o.ChunkSize
	if size == 0 {
		return DefaultChunkSize, nil
	}

	if size < 0 || size&(size-1) != 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
	}

	return size, nil
}

// workers returns the effective worker limit.
func (o *CompressOptions) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.GOMAXPROCS(0)
}
