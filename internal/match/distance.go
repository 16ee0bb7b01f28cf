package match

// Distance returns the optimal string alignment distance between a and b:
// the number of single-rune insertions, deletions, substitutions and
// adjacent transpositions needed to turn one into the other. A swapped pair
// such as "emerlad" for "emerald" costs one edit.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Three rolling rows: two back, previous and current.
	back := make([]int, len(rb)+1)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i

		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)

			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				curr[j] = min(curr[j], back[j-2]+1)
			}
		}

		back, prev, curr = prev, curr, back
	}

	return prev[len(rb)]
}

// Similarity maps Distance onto [0, 1]: 1 for identical strings, 0 when
// every rune of the longer string has to change.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(longest)
}
