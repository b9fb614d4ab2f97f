// apps/solver/internal/solver/candidates.go
//
// CandidateStore owns the pool of words still consistent with every
// (guess, pattern) pair applied so far.
//
// Notes:
//   - The pool only ever shrinks; it is always a subset of the seed list.
//   - Filter is the only mutating operation and validates before mutating.
//   - Not safe for concurrent use; callers serialize access (see session package).

package solver

import "fmt"

// DefaultLength is the word length assumed for an empty seed list.
const DefaultLength = 5

// CandidateStore holds the current candidate pool for one solving session.
type CandidateStore struct {
	length int
	pool   []string
}

// NewCandidateStore seeds a store with a copy of words.
// The word length L is taken from the first word; the list is assumed
// pre-validated to a single length.
func NewCandidateStore(words []string) *CandidateStore {
	length := DefaultLength
	if len(words) > 0 {
		length = len(words[0])
	}
	pool := make([]string, len(words))
	copy(pool, words)
	return &CandidateStore{length: length, pool: pool}
}

// Length returns the word length L every guess and pattern must match.
func (c *CandidateStore) Length() int { return c.length }

// Size returns the number of remaining candidates.
func (c *CandidateStore) Size() int { return len(c.pool) }

// Pool returns a copy of the remaining candidates in their original order.
func (c *CandidateStore) Pool() []string {
	out := make([]string, len(c.pool))
	copy(out, c.pool)
	return out
}

// Filter drops every candidate inconsistent with guess/pattern.
//
// Returns *InvalidInputError (pool untouched) when either input has the wrong
// length or the pattern holds a Mark outside correct/present/absent.
// Returns ErrEmptyPool when nothing survived.
func (c *CandidateStore) Filter(guess string, pattern Pattern) error {
	if err := c.validate(guess, pattern); err != nil {
		return err
	}

	kept := make([]string, 0, len(c.pool))
	for _, w := range c.pool {
		if consistent(w, guess, pattern) {
			kept = append(kept, w)
		}
	}
	c.pool = kept

	if len(kept) == 0 {
		return ErrEmptyPool
	}
	return nil
}

func (c *CandidateStore) validate(guess string, pattern Pattern) error {
	if len(guess) != c.length {
		return &InvalidInputError{
			Field:  "guess",
			Reason: fmt.Sprintf("got %d letters, want %d", len(guess), c.length),
		}
	}
	if len(pattern) != c.length {
		return &InvalidInputError{
			Field:  "pattern",
			Reason: fmt.Sprintf("got %d symbols, want %d", len(pattern), c.length),
		}
	}
	for i, m := range pattern {
		if !m.valid() {
			return &InvalidInputError{
				Field:  "pattern",
				Reason: fmt.Sprintf("unknown mark %q at position %d", string(m), i),
			}
		}
	}
	return nil
}

// consistent reports whether word could be the secret given guess/pattern.
//
// remaining starts as the word's letter multiset. Correct positions consume
// their letter first (pass 1); then, left to right, each Present must land on
// a different letter and consume an unaccounted occurrence, and each Absent
// requires that no unaccounted occurrence is left (pass 2).
func consistent(word, guess string, pattern Pattern) bool {
	remaining := make(map[byte]int, len(word))
	for i := 0; i < len(word); i++ {
		remaining[word[i]]++
	}

	// Pass 1: correct positions.
	for i, m := range pattern {
		if m != MarkCorrect {
			continue
		}
		if word[i] != guess[i] {
			return false
		}
		remaining[guess[i]]--
	}

	// Pass 2: present/absent, strictly left to right.
	for i, m := range pattern {
		g := guess[i]
		switch m {
		case MarkPresent:
			if word[i] == g || remaining[g] == 0 {
				return false
			}
			remaining[g]--
		case MarkAbsent:
			if remaining[g] > 0 {
				return false
			}
		}
	}
	return true
}
