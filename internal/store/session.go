// internal/store/session.go
//
// Concurrency-safe holder for the helper's single tracked session.
// The tracker itself is a plain in-memory value and is not safe for
// concurrent use, so every surface that can see more than one goroutine
// (the HTTP serve mode) goes through this wrapper, which serializes all
// access under one mutex.
//
// Characteristics:
//   - Exactly one session slot; starting a new session replaces the old one.
//   - State is lost when the process exits. There is deliberately no
//     persistence: the helper lives and dies with one puzzle.

package store

import (
	"errors"
	"sync"

	"github.com/robalobadob/wordle-helper/internal/game"
	"github.com/robalobadob/wordle-helper/internal/tracker"
)

// ErrNoSession is returned when Update/Check/Debug run before Start.
var ErrNoSession = errors.New("no active session")

// Session owns at most one tracker and serializes access to it.
type Session struct {
	mu sync.RWMutex // guards t
	t  *tracker.Tracker
}

// NewSession constructs an empty session holder.
func NewSession() *Session {
	return &Session{}
}

// Start begins a fresh session for words of the given length, discarding
// any previous one. Length must be positive.
func (s *Session) Start(length int) error {
	if length <= 0 {
		return errors.New("word length must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t = tracker.New(length)
	return nil
}

// Active reports whether a session has been started.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t != nil
}

// Length reports the active session's word length, or 0 if none.
func (s *Session) Length() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.t == nil {
		return 0
	}
	return s.t.Length()
}

// Update merges one round of feedback into the active session.
func (s *Session) Update(guess string, marks []game.Mark) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.t == nil {
		return ErrNoSession
	}
	return s.t.Update(guess, marks)
}

// Check vets a candidate guess against the active session's knowledge.
func (s *Session) Check(candidate string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.t == nil {
		return ErrNoSession
	}
	return s.t.Check(candidate)
}

// Debug renders the active session's knowledge dump.
func (s *Session) Debug() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.t == nil {
		return "", ErrNoSession
	}
	return s.t.DebugString(), nil
}
