// shell.go
//
// Interactive driver for a helper session.
// Flow: prompt for the puzzle's word length (re-prompt until it parses),
// then loop over a small menu — add a scored guess, check a candidate,
// dump the accumulated knowledge, exit.
//
// All tracker errors are advisory and rendered to the user; the shell
// itself only stops on EOF or an explicit exit.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle-helper/internal/game"
	"github.com/robalobadob/wordle-helper/internal/tracker"
)

// Shell color styles (semantic subset; colors chosen to read on dark and
// light terminals).
var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
)

// shell wires a tracker to line-based input/output.
type shell struct {
	in  *bufio.Scanner
	out io.Writer
	t   *tracker.Tracker
}

// runShell drives one interactive session to completion.
// Returns nil on a clean exit (menu choice or EOF).
func runShell(in io.Reader, out io.Writer) error {
	sh := &shell{in: bufio.NewScanner(in), out: out}

	fmt.Fprintln(out, styleTitle.Render("wordle-helper"))
	fmt.Fprintln(out, "I won't tell you which word to use, but I can tell you if a guess")
	fmt.Fprintln(out, "you are about to make contradicts your previous guesses.")

	n, ok := sh.promptLength()
	if !ok {
		return nil
	}
	sh.t = tracker.New(n)
	sh.loop()
	fmt.Fprintln(out, styleMuted.Render("bye"))
	return nil
}

// readLine reads one trimmed line; ok=false means EOF.
func (sh *shell) readLine() (string, bool) {
	if !sh.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.in.Text()), true
}

// promptLength asks for the word length until a positive integer arrives.
func (sh *shell) promptLength() (int, bool) {
	for {
		fmt.Fprint(sh.out, "Enter the number of letters: ")
		line, ok := sh.readLine()
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil || n <= 0 {
			fmt.Fprintln(sh.out, styleError.Render("Not a positive number, try again."))
			continue
		}
		return n, true
	}
}

// loop shows the menu until exit or EOF.
func (sh *shell) loop() {
	for {
		fmt.Fprintln(sh.out)
		fmt.Fprintln(sh.out, "What do you want to do?")
		fmt.Fprintln(sh.out, "a. Add new guess")
		fmt.Fprintln(sh.out, "b. Check legality of guess")
		fmt.Fprintln(sh.out, "c. Debug dump")
		fmt.Fprintln(sh.out, "d. Exit")

		choice, ok := sh.readLine()
		if !ok {
			return
		}
		switch strings.ToLower(choice) {
		case "a", "1":
			sh.addGuess()
		case "b", "2":
			sh.checkGuess()
		case "c", "3":
			fmt.Fprint(sh.out, sh.t.DebugString())
		case "d", "4":
			return
		default:
			fmt.Fprintln(sh.out, styleError.Render("Invalid input!"))
		}
	}
}

// addGuess records one scored guess: word plus the game's feedback string
// ('y' green, 'm' yellow, anything else gray).
func (sh *shell) addGuess() {
	fmt.Fprint(sh.out, "Input new word: ")
	word, ok := sh.readLine()
	if !ok {
		return
	}
	fmt.Fprint(sh.out, "Enter wordle result (y=green, m=yellow, n=gray): ")
	result, ok := sh.readLine()
	if !ok {
		return
	}
	if err := sh.t.Update(word, game.ParseMarks(result)); err != nil {
		fmt.Fprintln(sh.out, styleError.Render(err.Error()))
		return
	}
	fmt.Fprintln(sh.out, styleSuccess.Render("Recorded."))
}

// checkGuess vets a candidate and prints every problem found.
func (sh *shell) checkGuess() {
	fmt.Fprint(sh.out, "Enter the word you want to guess: ")
	word, ok := sh.readLine()
	if !ok {
		return
	}
	err := sh.t.Check(word)
	if err == nil {
		fmt.Fprintln(sh.out, styleSuccess.Render("No issues!"))
		return
	}
	var ve *tracker.ViolationsError
	if errors.As(err, &ve) {
		fmt.Fprintln(sh.out, styleError.Render("Errors:"))
		for _, v := range ve.Violations {
			fmt.Fprintln(sh.out, styleError.Render("  "+v.String()))
		}
		return
	}
	// no-information or length gate
	fmt.Fprintln(sh.out, styleError.Render(err.Error()))
}
