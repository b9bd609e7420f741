package yaz0

// findMatch returns the longest earlier run in chunk that matches the bytes at pos.
// The window is the WindowSize bytes before pos; the match may not extend past pos
// nor past MaxMatch bytes or the chunk end. Among equal lengths the first found wins,
// scanning from the farthest start toward pos.
func findMatch(chunk []byte, pos int) (length, start int) {
	maxLen := min(MaxMatch, len(chunk)-pos)
	if maxLen < MinMatch {
		return 0, 0
	}

	input := chunk[pos : pos+maxLen]
	for j := max(0, pos-WindowSize); j < pos; j++ {
		// Runs starting at j stop at pos, so nothing from here on can beat length.
		if pos-j <= length {
			break
		}

		limit := min(maxLen, pos-j)
		dict := chunk[j : j+limit]
		n := 0
		for n < limit && dict[n] == input[n] {
			n++
		}

		if n > length {
			length = n
			start = j
			if length == maxLen {
				break
			}
		}
	}

	return length, start
}
