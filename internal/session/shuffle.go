package session

import "math/rand/v2"

// shuffle permutes s in place with Fisher-Yates. A nil r uses the
// auto-seeded global source.
func shuffle[T any](r *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := intN(r, i+1)
		s[i], s[j] = s[j], s[i]
	}
}

func intN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}
