/*
Package yaz0 implements Yaz0 compression and decompression.

Format: a 16-byte header ("Yaz0", uint32 big-endian decompressed size, 8 reserved bytes)
followed by groups of one control byte and up to 8 tokens, most significant bit first.
Bit 1 = literal (1 byte); bit 0 = back-reference (2 or 3 bytes).
Back-reference: 12-bit lookback stored as lookback-1 (1..4096), length nibble stored as
length-2 (3..17); a zero nibble means a third byte holds length-18 (18..273).
There is no end marker: decoding stops once the declared size is produced.

The compressor splits input into independent chunks (DefaultChunkSize 2048) and tokenizes them
concurrently with a greedy longest-match search; tokens are packed into control groups in input
order, so a group may span two chunks. Back-references never cross a chunk boundary. Decompression is a single sequential pass.

# Examples

Round-trip compress and decompress:

	enc, err := yaz0.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := yaz0.Decompress(enc)
	if err != nil {
		return err
	}
	// dec equals data

Compress with a custom chunk size and worker limit:

	enc, err := yaz0.Compress(data, &yaz0.CompressOptions{ChunkSize: 8192, Workers: 4})

Reuse caller-managed memory:

	dst := make([]byte, yaz0.MaxCompressedLen(len(data)))
	n, err := yaz0.CompressInto(dst, data, nil)
	enc := dst[:n]

	size, err := yaz0.DecompressedSize(enc)
	out := make([]byte, size)
	_, err = yaz0.DecompressInto(enc, out)

Decode one stream embedded in a larger byte stream:

	out, consumed, err := yaz0.DecompressFromReader(r)
	if err != nil {
		return err
	}
	_ = consumed

Check errors with errors.Is:

	if errors.Is(err, yaz0.ErrFormat) {
		// not Yaz0 at all
	}
	if errors.Is(err, yaz0.ErrCorruptData) {
		// Yaz0 header, damaged body
	}
*/
package yaz0
