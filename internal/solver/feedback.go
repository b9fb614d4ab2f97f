// apps/solver/internal/solver/feedback.go
//
// Reference Wordle scoring: what pattern a secret word produces for a guess.
// The filter never calls this; it drives simulations and lets tests produce
// feedback that is known to be truthful.

package solver

// Feedback implements the standard two-pass Wordle scoring.
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count remaining (non-correct) secret letters.
//
// Pass 2:
//   - For each non-correct guess letter: Present if a remaining count exists
//     (and decrement it), otherwise Absent.
//
// guess and secret must have equal length; otherwise nil is returned.
func Feedback(guess, secret string) Pattern {
	n := len(secret)
	if len(guess) != n {
		return nil
	}
	res := make(Pattern, n)
	counts := make(map[byte]int, n)

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = MarkCorrect
		} else {
			counts[secret[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		if c := guess[i]; counts[c] > 0 {
			res[i] = MarkPresent
			counts[c]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}
