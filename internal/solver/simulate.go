// apps/solver/internal/solver/simulate.go
//
// Self-play: drive a CandidateStore against a known secret, always guessing
// the top recommendation. Used by the `simulate` command to sanity-check a
// word list and the heuristic together.

package solver

// Turn is one guess made during a simulation.
type Turn struct {
	Guess     string
	Pattern   Pattern
	Remaining int
}

// Simulate plays up to maxTurns guesses against secret. opener, when
// non-empty, replaces the first recommendation. It returns the turns played
// and whether the secret was guessed.
//
// The secret does not have to be in words; if it is not, the pool will
// eventually run dry and ErrEmptyPool is returned.
func Simulate(words []string, secret, opener string, maxTurns int) ([]Turn, bool, error) {
	cs := NewCandidateStore(words)
	if len(secret) != cs.Length() {
		return nil, false, &InvalidInputError{Field: "secret", Reason: "length does not match word list"}
	}

	var turns []Turn
	for len(turns) < maxTurns {
		guess := opener
		if len(turns) > 0 || guess == "" {
			top := Recommend(cs.Pool(), 1)
			if len(top) == 0 {
				return turns, false, ErrEmptyPool
			}
			guess = top[0].Word
		}

		p := Feedback(guess, secret)
		if p == nil {
			return turns, false, &InvalidInputError{Field: "guess", Reason: "length does not match secret"}
		}
		err := cs.Filter(guess, p)
		turns = append(turns, Turn{Guess: guess, Pattern: p, Remaining: cs.Size()})
		if p.AllCorrect() {
			return turns, true, nil
		}
		if err != nil {
			return turns, false, err
		}
	}
	return turns, false, nil
}
