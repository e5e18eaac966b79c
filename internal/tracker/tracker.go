// internal/tracker/tracker.go
//
// Constraint tracker for a single helper session.
// Responsibilities:
//   - Accumulate knowledge from scored guesses: confirmed letters by
//     position, plus per-letter positional feasibility.
//   - Merge each new feedback round without losing or contradicting what
//     earlier rounds established (knowledge only ever narrows).
//   - Vet a proposed guess against everything learned so far, reporting
//     every contradiction rather than the first.
//
// Notes:
//   - The tracker never sees the answer and never consults a word list; it
//     works purely from the feedback the player transcribes.
//   - Not safe for concurrent use. Callers with more than one goroutine
//     (the HTTP serve mode) must serialize access; see internal/store.

package tracker

import (
	"sort"
	"strings"

	"github.com/robalobadob/wordle-helper/internal/game"
)

// Tracker accumulates feedback from successive guesses for one puzzle of a
// fixed word length.
type Tracker struct {
	length  int
	fixed   []rune                // best-known letter per position; 0 = unknown
	letters map[rune]*letterRecord // keyed by lowercase letter; entries never removed
}

// New constructs a tracker for words of the given length.
// The length is fixed for the life of the tracker.
func New(length int) *Tracker {
	return &Tracker{
		length:  length,
		fixed:   make([]rune, length),
		letters: make(map[rune]*letterRecord),
	}
}

// Length reports the fixed word length.
func (t *Tracker) Length() int { return t.length }

// HasInformation reports whether any feedback has been recorded yet.
func (t *Tracker) HasInformation() bool { return len(t.letters) > 0 }

// promotion records a letter confirmed at a position during a feedback
// round. Promotions are collected during the merge scan and applied in a
// second phase, so a round containing several hits cannot have one hit's
// exclusion pass clobber another hit processed in the same round.
type promotion struct {
	letter rune
	pos    int
}

// Update merges one round of feedback into the tracker.
//
// guess and marks must be in lockstep: marks[p] is the game's verdict on
// guess[p]. Lengths are validated against the tracker's word length; a
// mismatch returns a LengthError and leaves the tracker untouched. Update
// cannot otherwise fail — contradictory feedback is not detected here, the
// tracker trusts the player transcribed the game faithfully.
//
// Merge rules per (letter c, mark m) at position p:
//
//   - c unseen, miss            → record c fully absent.
//   - c unseen, present         → new record, all possible, p ruled out.
//   - c unseen, hit             → new record, all possible, p confirmed.
//   - c absent, miss            → no-op (a useless but harmless repeat).
//   - c absent, present or hit  → the letter occurs after all. This is the
//     repeated-letter case: an earlier copy in the same guess was marked
//     miss to mean "no additional copy", so every position not named now is
//     ruled out. The record becomes all-absent with p confirmed (hit) or
//     nothing possible at all (present: we only learned "occurs, not here").
//   - c tracked, miss           → the puzzle will confirm no further copies:
//     every still-possible cell becomes absent.
//   - c tracked, present        → p ruled out for c.
//   - c tracked, hit            → p confirmed for c.
//
// After the scan, every hit is applied as mutual exclusion: the fixed letter
// for its position is set and the position is ruled out for every other
// tracked letter. At most one letter occupies each position.
func (t *Tracker) Update(guess string, marks []game.Mark) error {
	runes := []rune(strings.ToLower(strings.TrimSpace(guess)))
	if len(runes) != t.length {
		return &LengthError{Expected: t.length, Got: len(runes)}
	}
	if len(marks) != t.length {
		return &LengthError{Expected: t.length, Got: len(marks)}
	}

	// Phase 1: per-position cell transitions, collecting promotions.
	var promoted []promotion
	for p, c := range runes {
		m := marks[p]
		rec, seen := t.letters[c]
		switch {
		case !seen:
			if m == game.MarkMiss {
				t.letters[c] = &letterRecord{absent: true}
				break
			}
			cells := possibleCells(t.length)
			if m == game.MarkHit {
				cells[p] = CellConfirmed
				promoted = append(promoted, promotion{c, p})
			} else {
				cells[p] = CellAbsent
			}
			t.letters[c] = &letterRecord{cells: cells}

		case rec.absent:
			switch m {
			case game.MarkMiss:
				// Already known fully absent; another miss teaches nothing.
			case game.MarkHit:
				cells := absentCells(t.length)
				cells[p] = CellConfirmed
				rec.absent = false
				rec.cells = cells
				promoted = append(promoted, promotion{c, p})
			default: // present
				rec.absent = false
				rec.cells = absentCells(t.length)
			}

		default:
			switch m {
			case game.MarkMiss:
				// This guess used up every copy the puzzle will confirm;
				// anything not pinned down is now ruled out.
				for i := range rec.cells {
					if rec.cells[i] == CellPossible {
						rec.cells[i] = CellAbsent
					}
				}
			case game.MarkHit:
				rec.cells[p] = CellConfirmed
				promoted = append(promoted, promotion{c, p})
			default: // present
				rec.cells[p] = CellAbsent
			}
		}
	}

	// Phase 2: mutual exclusion for every confirmed (letter, position).
	for _, pr := range promoted {
		t.fixed[pr.pos] = pr.letter
		for l, rec := range t.letters {
			if l == pr.letter || rec.absent {
				continue
			}
			rec.cells[pr.pos] = CellAbsent
		}
	}
	return nil
}

// Check vets a candidate guess against accumulated knowledge.
//
// Returns nil when no constraint is violated. Early failures: ErrNoInformation
// if no feedback was ever recorded, LengthError on a wrong-length candidate
// (no further checks run). Otherwise both validation passes run to
// completion and every contradiction found is returned in one
// ViolationsError: fixed-position mismatches first in position order, then
// per-letter violations in scan order.
func (t *Tracker) Check(candidate string) error {
	if !t.HasInformation() {
		return ErrNoInformation
	}
	runes := []rune(strings.ToLower(strings.TrimSpace(candidate)))
	if len(runes) != t.length {
		return &LengthError{Expected: t.length, Got: len(runes)}
	}

	var violations []Violation

	// Pass 1: positions with a confirmed letter must hold it.
	for p, want := range t.fixed {
		if want != 0 && runes[p] != want {
			violations = append(violations, Violation{
				Kind:     ViolationFixedMismatch,
				Position: p,
				Letter:   string(runes[p]),
				Expected: string(want),
			})
		}
	}

	// Pass 2: every candidate letter must still be feasible at its position.
	for p, c := range runes {
		rec, seen := t.letters[c]
		if !seen {
			continue
		}
		if rec.absent {
			violations = append(violations, Violation{
				Kind:     ViolationLetterAbsent,
				Position: p,
				Letter:   string(c),
			})
		} else if rec.cells[p] == CellAbsent {
			violations = append(violations, Violation{
				Kind:     ViolationRuledOut,
				Position: p,
				Letter:   string(c),
			})
		}
	}

	if len(violations) > 0 {
		return &ViolationsError{Violations: violations}
	}
	return nil
}

// DebugString renders a human-readable dump of the current knowledge:
// the fixed letters ('*' for unknown slots), the letters known fully
// absent, and a compact per-position state string for every other tracked
// letter ('x' ruled out, '.' unknown, '!' confirmed). Pure projection of
// state; letters are sorted so output is deterministic.
func (t *Tracker) DebugString() string {
	var b strings.Builder

	b.WriteString("fixed: ")
	for _, r := range t.fixed {
		if r == 0 {
			b.WriteByte('*')
		} else {
			b.WriteRune(r)
		}
	}
	b.WriteByte('\n')

	var absentees, present []rune
	for l, rec := range t.letters {
		if rec.absent {
			absentees = append(absentees, l)
		} else {
			present = append(present, l)
		}
	}
	sort.Slice(absentees, func(i, j int) bool { return absentees[i] < absentees[j] })
	sort.Slice(present, func(i, j int) bool { return present[i] < present[j] })

	b.WriteString("absent:")
	for i, l := range absentees {
		if i > 0 {
			b.WriteByte(',')
		} else {
			b.WriteByte(' ')
		}
		b.WriteRune(l)
	}
	b.WriteByte('\n')

	for _, l := range present {
		b.WriteRune(l)
		b.WriteString(" -> ")
		for _, c := range t.letters[l].cells {
			b.WriteByte(c.symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
