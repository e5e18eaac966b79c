// internal/game/score.go
//
// Offline guess scorer.
// The helper never knows the real puzzle's answer; scoring exists so a user
// (or a test) can replay a finished game against a known answer and obtain
// the exact feedback string the real game would have produced.
//
// Notes:
//   - Implements the classic two-pass Wordle algorithm, which is the only
//     scheme that behaves correctly with repeated letters.
//   - Inputs must be lowercase a–z and of equal length.

package game

import (
	"errors"
	"strings"
)

// ErrBadWord is returned when a word is empty, mixed-case garbage, or the
// answer and guess lengths disagree.
var ErrBadWord = errors.New("words must be equal-length lowercase a-z")

// Score computes the per-letter marks a Wordle game would emit for guess
// against answer.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) answer letters by letter index.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that letter,
//     mark Present and decrement the count; otherwise mark Miss.
//
// This ensures correct behavior with repeated letters in both answer and guess.
func Score(answer, guess string) ([]Mark, error) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	guess = strings.ToLower(strings.TrimSpace(guess))
	if answer == "" || len(answer) != len(guess) || !IsAlpha(answer) || !IsAlpha(guess) {
		return nil, ErrBadWord
	}

	n := len(guess)
	res := make([]Mark, n)
	answerRunes := []rune(answer)
	guessRunes := []rune(guess)

	// Letter frequency for the non-hit positions (a–z).
	var counts [26]int

	// First pass: mark hits and collect counts for remaining answer letters.
	for i := 0; i < n; i++ {
		if guessRunes[i] == answerRunes[i] {
			res[i] = MarkHit
		} else {
			counts[idx(answerRunes[i])]++
		}
	}

	// Second pass: resolve presents/misses for non-hit tiles.
	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := idx(guessRunes[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res, nil
}

// idx maps a lowercase ASCII letter rune to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(r rune) int { return int(r - 'a') }

// IsAlpha checks that a string consists only of lowercase a–z.
func IsAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
