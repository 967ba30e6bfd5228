package errors

// maxSuggestionDistance bounds how different a name may be and still be suggested.
const maxSuggestionDistance = 3

// closestMatch returns the candidate with the smallest edit distance to name,
// or "" when none is within maxSuggestionDistance.
func closestMatch(name string, candidates []string) string {
	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, c := range candidates {
		if d := editDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
