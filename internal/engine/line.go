package engine

// Compress packs the non-zero values of line to the front, preserving their
// order. The result has the same length as line, padded with zeros.
func Compress(line []int) []int {
	result := make([]int, len(line))
	writePos := 0

	for _, v := range line {
		if v == 0 {
			continue
		}
		result[writePos] = v
		writePos++
	}

	return result
}

// Merge combines adjacent equal non-zero values in a single left-to-right pass.
// The left cell of a pair doubles and the right cell becomes zero. A cell takes
// part in at most one merge. Returns the merged line and the score gained.
func Merge(line []int) (result []int, gained int) {
	result = make([]int, len(line))
	copy(result, line)

	for i := 0; i < len(result)-1; i++ {
		if result[i] != 0 && result[i] == result[i+1] {
			result[i] *= 2
			gained += result[i]
			result[i+1] = 0
		}
	}

	return result, gained
}

// Reverse returns a reversed copy of line.
func Reverse(line []int) []int {
	n := len(line)
	result := make([]int, n)
	for i := range n {
		result[i] = line[n-1-i]
	}
	return result
}

// SlideLine moves a line toward its front: compress, merge, compress.
func SlideLine(line []int) ([]int, int) {
	merged, gained := Merge(Compress(line))
	return Compress(merged), gained
}

func equalLines(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
