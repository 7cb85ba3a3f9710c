package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// ArgMax returns the index of the first maximal score, or -1 for an empty slice.
// Later elements only replace the current best when strictly greater.
func ArgMax[T ~int | ~int8 | ~float64](scores []T) int {
	best := -1
	for i, score := range scores {
		if best < 0 || score > scores[best] {
			best = i
		}
	}
	return best
}
