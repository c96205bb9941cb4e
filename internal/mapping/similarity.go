// Package mapping provides functionality to map candidate achievements to employer pain points.
package mapping

// similarityRatio computes the longest-matching-blocks similarity ratio
// between two strings: 2*M / (len(a)+len(b)), where M is the total length of
// all matching blocks. This mirrors the classic Ratcliff/Obershelp measure.
func similarityRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1.0
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}

	matched := matchingBlockLength(ra, rb)
	return 2.0 * float64(matched) / float64(len(ra)+len(rb))
}

// matchingBlockLength returns the total length of matching blocks found by
// recursively splitting around the longest common substring.
func matchingBlockLength(a, b []rune) int {
	aStart, bStart, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}

	total := size
	total += matchingBlockLength(a[:aStart], b[:bStart])
	total += matchingBlockLength(a[aStart+size:], b[bStart+size:])
	return total
}

// longestCommonSubstring finds the longest common substring of a and b using
// a rolling dynamic-programming row. Returns start offsets and length.
func longestCommonSubstring(a, b []rune) (aStart, bStart, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > size {
					size = curr[j]
					aStart = i - size
					bStart = j - size
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}

	return aStart, bStart, size
}
