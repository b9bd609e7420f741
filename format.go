package yaz0

// Yaz0 format constants.
const (
	HeaderSize       = 16        // Magic (4) + big-endian size (4) + reserved (8).
	Magic            = "Yaz0"    // First four bytes of every stream.
	WindowSize       = 4096      // Largest lookback a 12-bit distance can express.
	MinMatch         = 3         // Shortest back-reference worth encoding.
	MaxShortMatch    = 17        // Longest length that fits the 4-bit nibble (stored as length-2).
	MaxMatch         = 273       // Longest length of the extended form (stored as length-18).
	FlagBits         = 8         // Tokens per control byte.
	DefaultChunkSize = 2048      // Default independently compressed slice of input.
	MaxInputSize     = 1<<32 - 1 // Largest payload the size field can declare.
)

// extendedBase is added to the third byte of an extended back-reference.
const extendedBase = MaxShortMatch + 1
