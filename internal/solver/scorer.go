// apps/solver/internal/solver/scorer.go
//
// Letter-coverage ranking over the current pool.
//
// The score of a word is the sum, over its distinct letters, of how many pool
// words contain that letter at least once. It is a greedy coverage heuristic:
// it favours guesses that test many common, different letters. It does not
// maximise expected information and makes no optimality claim.

package solver

import "sort"

// Rank scores every word in pool and returns them best first.
// Equal scores keep their pool order.
func Rank(pool []string) []Suggestion {
	if len(pool) == 0 {
		return []Suggestion{}
	}

	// Global table: letter -> number of pool words containing it.
	freq := make(map[byte]int, 26)
	for _, w := range pool {
		for c := range distinct(w) {
			freq[c]++
		}
	}

	out := make([]Suggestion, len(pool))
	for i, w := range pool {
		score := 0
		for c := range distinct(w) {
			score += freq[c]
		}
		out[i] = Suggestion{Word: w, Score: score}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Recommend returns at most topK entries of Rank(pool).
// An empty pool or a non-positive topK gives an empty slice.
func Recommend(pool []string, topK int) []Suggestion {
	if topK <= 0 || len(pool) == 0 {
		return []Suggestion{}
	}
	ranked := Rank(pool)
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}

func distinct(w string) map[byte]struct{} {
	set := make(map[byte]struct{}, len(w))
	for i := 0; i < len(w); i++ {
		set[w[i]] = struct{}{}
	}
	return set
}
