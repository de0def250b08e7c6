// internal/game/engine.go
//
// Core game engine for a single word scramble session.
// Responsibilities:
//   - Start rounds from a root word supplied by the caller.
//   - Normalize, validate and score submitted words.
//   - Track the round's accepted words (most recent first) and running score.
//
// Notes:
//   - A Session is owned by one caller at a time; it does no locking.
//   - A rejected or failed Submit leaves the session untouched.
package game

import (
	"context"
	"errors"
	"unicode/utf8"
)

var errNoDictionary = errors.New("game: no dictionary configured")

// Session holds the mutable state of one player's game.
type Session struct {
	ID string

	validator Validator
	active    bool
	root      string
	accepted  []string
	score     int
}

// New constructs a session with no active round.
func New(id string, v Validator) *Session {
	return &Session{ID: id, validator: v}
}

// StartRound begins a new round on root, clearing the score and word list.
// root is expected to be a non-empty lowercase word.
func (s *Session) StartRound(root string) {
	s.root = root
	s.accepted = nil
	s.score = 0
	s.active = true
}

// Submit normalizes raw, validates it and, if accepted, records the word and
// adds its points to the score.
// Returns ErrNoRound before the first StartRound, or a *Rejection when the word
// is turned down.
func (s *Session) Submit(ctx context.Context, raw string) (Accepted, error) {
	if !s.active {
		return Accepted{}, ErrNoRound
	}
	word := Normalize(raw, s.validator.language())
	if err := s.validator.Validate(ctx, word, s.root, s.accepted); err != nil {
		return Accepted{}, err
	}

	points := Score(word, s.root)
	s.accepted = append([]string{word}, s.accepted...)
	s.score += points
	return Accepted{Word: word, Points: points, Score: s.score}, nil
}

// Active reports whether a round has been started.
func (s *Session) Active() bool { return s.active }

// Root returns the current round's root word ("" before the first round).
func (s *Session) Root() string { return s.root }

// Snapshot returns a copy of the session state that is safe to hand out.
func (s *Session) Snapshot() Snapshot {
	words := append([]string{}, s.accepted...)
	return Snapshot{
		ID:     s.ID,
		Active: s.active,
		Root:   s.root,
		Words:  words,
		Score:  s.score,
	}
}

// Score returns the points for an accepted candidate: its length times the
// root word's length, counted in characters.
func Score(candidate, root string) int {
	return utf8.RuneCountInString(candidate) * utf8.RuneCountInString(root)
}
