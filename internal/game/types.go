// internal/game/types.go
//
// Core type definitions for guess feedback.
// Defines:
//   - Mark: per-letter result of a scored guess (hit/present/miss).
//   - Parsing between compact feedback strings ("nmy..") and []Mark.

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":    letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":   letter does not exist in the answer at all.
type Mark string

const (
	MarkHit    Mark = "hit"
	MarkPresent     = "present"
	MarkMiss        = "miss"
)

// ParseMarks converts a compact feedback string into per-letter marks.
// One character per position: 'y' → hit, 'm' → present, anything else → miss.
// The permissive miss default matches how players transcribe results: only
// the colored tiles need an exact symbol.
func ParseMarks(s string) []Mark {
	marks := make([]Mark, 0, len(s))
	for _, r := range s {
		switch r {
		case 'y', 'Y':
			marks = append(marks, MarkHit)
		case 'm', 'M':
			marks = append(marks, MarkPresent)
		default:
			marks = append(marks, MarkMiss)
		}
	}
	return marks
}

// MarksString renders marks back to the compact one-character-per-position
// form ('y'/'m'/'n'). Inverse of ParseMarks for well-formed input.
func MarksString(marks []Mark) string {
	b := make([]byte, len(marks))
	for i, m := range marks {
		switch m {
		case MarkHit:
			b[i] = 'y'
		case MarkPresent:
			b[i] = 'm'
		default:
			b[i] = 'n'
		}
	}
	return string(b)
}
