// internal/tracker/errors.go
//
// Error taxonomy for the tracker.
// Everything here is advisory: a failed check guides the player to a better
// guess, it is never a program fault. Nothing in this package panics.

package tracker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoInformation is returned by Check before any feedback has been
// recorded; vetting a guess against an empty tracker is meaningless.
var ErrNoInformation = errors.New("no information yet")

// LengthError reports a word whose length does not match the puzzle.
type LengthError struct {
	Expected int
	Got      int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("word must be %d letters, got %d", e.Expected, e.Got)
}

// ViolationKind discriminates the ways a candidate can contradict
// accumulated knowledge.
type ViolationKind string

const (
	// ViolationFixedMismatch: a position with a confirmed letter holds a
	// different letter in the candidate.
	ViolationFixedMismatch ViolationKind = "fixed_mismatch"
	// ViolationLetterAbsent: the candidate uses a letter known to not occur
	// in the solution at all.
	ViolationLetterAbsent ViolationKind = "letter_absent"
	// ViolationRuledOut: the candidate places a letter at a position already
	// ruled out for it.
	ViolationRuledOut ViolationKind = "ruled_out"
)

// Violation describes one specific contradiction between a candidate guess
// and the tracker's knowledge.
type Violation struct {
	Kind     ViolationKind `json:"kind"`
	Position int           `json:"position"`
	Letter   string        `json:"letter"`
	Expected string        `json:"expected,omitempty"` // fixed_mismatch only
}

func (v Violation) String() string {
	switch v.Kind {
	case ViolationFixedMismatch:
		return fmt.Sprintf("position %d: expected '%s', found '%s'", v.Position, v.Expected, v.Letter)
	case ViolationLetterAbsent:
		return fmt.Sprintf("position %d: letter '%s' must be absent", v.Position, v.Letter)
	default:
		return fmt.Sprintf("position %d: letter '%s' already ruled out here", v.Position, v.Letter)
	}
}

// ViolationsError carries every contradiction found by a check, in order:
// fixed-position mismatches by position, then per-letter violations in
// candidate-scan order. Callers display all of them at once.
type ViolationsError struct {
	Violations []Violation
}

func (e *ViolationsError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return strings.Join(parts, "; ")
}
