// apps/solver/internal/solver/types.go
//
// Core type definitions for the candidate-filtering engine.
// Defines:
//   - Mark: per-letter feedback for one guess position (correct/present/absent).
//   - Pattern: a positional sequence of Marks aligned with a guess.
//   - Suggestion: a ranked candidate word with its coverage score.
//   - InvalidInputError / ErrEmptyPool: the engine's error taxonomy.

package solver

import (
	"errors"
	"fmt"
	"strings"
)

// Mark represents the feedback for a single letter of a guess.
// Possible values:
//   - "correct": letter is in the secret at this exact position (G).
//   - "present": letter is in the secret, at a different position (Y).
//   - "absent":  no unaccounted occurrence of the letter remains (X).
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Symbol returns the single-letter marker used on input (G/Y/X).
func (m Mark) Symbol() byte {
	switch m {
	case MarkCorrect:
		return 'G'
	case MarkPresent:
		return 'Y'
	case MarkAbsent:
		return 'X'
	}
	return '?'
}

func (m Mark) valid() bool {
	return m == MarkCorrect || m == MarkPresent || m == MarkAbsent
}

// Pattern is the feedback for a whole guess, positionally aligned with it.
type Pattern []Mark

// String renders the pattern in G/Y/X form.
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, m := range p {
		b.WriteByte(m.Symbol())
	}
	return b.String()
}

// AllCorrect reports whether every position is MarkCorrect.
func (p Pattern) AllCorrect() bool {
	if len(p) == 0 {
		return false
	}
	for _, m := range p {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// ParsePattern converts a G/Y/X string (either case) into a Pattern.
// Any other symbol yields an *InvalidInputError.
func ParsePattern(s string) (Pattern, error) {
	out := make(Pattern, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'G', 'g':
			out = append(out, MarkCorrect)
		case 'Y', 'y':
			out = append(out, MarkPresent)
		case 'X', 'x':
			out = append(out, MarkAbsent)
		default:
			return nil, &InvalidInputError{
				Field:  "pattern",
				Reason: fmt.Sprintf("invalid symbol %q at position %d (use G, Y or X)", s[i], i),
			}
		}
	}
	return out, nil
}

// Suggestion is one ranked recommendation.
type Suggestion struct {
	Word  string `json:"word" msgpack:"word"`
	Score int    `json:"score" msgpack:"score"`
}

// ErrInvalidInput matches every *InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ErrEmptyPool is returned by Filter when no candidate survives. The pool has
// already been replaced (with nothing) when it is returned; the feedback history
// is self-contradictory.
var ErrEmptyPool = errors.New("no candidates left")

// InvalidInputError reports a rejected guess or pattern. The pool is never
// touched when it is returned.
type InvalidInputError struct {
	Field  string // "guess" or "pattern"
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) succeed.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }
