package yaz0

// encodedChunk holds the tokens of one chunk before they are grouped under control bytes.
// Groups span chunk boundaries, so control bytes are only written when chunks are joined.
type encodedChunk struct {
	payload []byte // Token payloads back to back.
	tokens  []byte // Payload length per token: 1 = literal, 2 or 3 = back-reference.
}

// encodeChunk appends the tokens for chunk to c. Back-references never reach outside chunk.
func encodeChunk(c *encodedChunk, chunk []byte) {
	i := 0
	for i < len(chunk) {
		length, start := findMatch(chunk, i)
		if length < MinMatch {
			c.payload = append(c.payload, chunk[i])
			c.tokens = append(c.tokens, 1)
			i++
			continue
		}

		// Lookback is stored 0-based in 12 bits.
		dist := i - start - 1
		if length <= MaxShortMatch {
			c.payload = append(c.payload, byte((length-2)<<4|dist>>8), byte(dist))
			c.tokens = append(c.tokens, 2)
		} else {
			c.payload = append(c.payload, byte(dist>>8), byte(dist), byte(length-extendedBase))
			c.tokens = append(c.tokens, 3)
		}
		i += length
	}
}

// encodedLen is the body size of chunks once packed into groups.
func encodedLen(chunks []*encodedChunk) int {
	payload, tokens := 0, 0
	for _, c := range chunks {
		payload += len(c.payload)
		tokens += len(c.tokens)
	}

	return payload + (tokens+FlagBits-1)/FlagBits
}

// groupWriter packs tokens into control-byte groups, most significant bit first.
type groupWriter struct {
	out      []byte
	flagPos  int // Offset of the open control byte in out.
	bitCount int // Tokens already in the open group.
}

// writeChunk appends the tokens of c, continuing the currently open group.
func (w *groupWriter) writeChunk(c *encodedChunk) {
	p := 0
	for _, n := range c.tokens {
		if w.bitCount == 0 {
			w.flagPos = len(w.out)
			w.out = append(w.out, 0)
		}

		// Control bit 1 = literal; back-references leave it 0.
		if n == 1 {
			w.out[w.flagPos] |= 0x80 >> w.bitCount
		}

		w.out = append(w.out, c.payload[p:p+int(n)]...)
		p += int(n)

		w.bitCount++
		if w.bitCount == FlagBits {
			w.bitCount = 0
		}
	}
}
