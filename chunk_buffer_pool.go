package yaz0

import "sync"

// chunkBufferPool is a pool of per-chunk token buffers.
var chunkBufferPool = sync.Pool{
	New: func() any {
		return &encodedChunk{
			payload: make([]byte, 0, DefaultChunkSize),
			tokens:  make([]byte, 0, DefaultChunkSize),
		}
	},
}

// acquireChunkBuffer returns an empty token buffer with room for a chunk of size bytes.
func acquireChunkBuffer(size int) *encodedChunk {
	c := chunkBufferPool.Get().(*encodedChunk)
	if cap(c.payload) < size {
		c.payload = make([]byte, 0, size)
	}
	if cap(c.tokens) < size {
		c.tokens = make([]byte, 0, size)
	}

	c.payload = c.payload[:0]
	c.tokens = c.tokens[:0]

	return c
}

// releaseChunkBuffer returns a token buffer to the pool.
func releaseChunkBuffer(c *encodedChunk) {
	if c == nil {
		return
	}

	chunkBufferPool.Put(c)
}
