// internal/game/types.go
//
// Core type definitions for the word scramble engine.
// Defines:
//   - Reason: why a submitted word was turned down.
//   - Rejection: the error returned for a turned-down word (title + message for the UI).
//   - Dictionary: the spell-checking capability the engine consults.
//   - Session: per-round state (root word, accepted words, score).

package game

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Reason identifies the rule a submitted word failed.
// Possible values:
//   - "too_short":          shorter than the configured minimum.
//   - "same_as_original":   the root word itself.
//   - "invalid_letters":    not buildable from the root word's letters.
//   - "duplicate_word":     already accepted this round.
//   - "not_a_word":         rejected by the dictionary.
//   - "oracle_unavailable": the dictionary could not answer.
type Reason string

const (
	ReasonTooShort          Reason = "too_short"
	ReasonSameAsOriginal    Reason = "same_as_original"
	ReasonInvalidLetters    Reason = "invalid_letters"
	ReasonDuplicateWord     Reason = "duplicate_word"
	ReasonNotAWord          Reason = "not_a_word"
	ReasonOracleUnavailable Reason = "oracle_unavailable"
)

// ErrNoRound is returned by Submit before the first StartRound.
var ErrNoRound = errors.New("game: no active round")

// Rejection is returned when a candidate fails validation.
// Title and Message are meant to be shown to the player as-is.
type Rejection struct {
	Reason  Reason
	Title   string
	Message string
	Err     error // underlying cause, only set for ReasonOracleUnavailable
}

func (r *Rejection) Error() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %s: %v", r.Reason, r.Message, r.Err)
	}
	return fmt.Sprintf("%s: %s", r.Reason, r.Message)
}

func (r *Rejection) Unwrap() error { return r.Err }

// AsRejection extracts a *Rejection from err, if any.
func AsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

func tooShort(min int) *Rejection {
	unit := "characters"
	if min == 1 {
		unit = "character"
	}
	return &Rejection{
		Reason:  ReasonTooShort,
		Title:   "Too short",
		Message: fmt.Sprintf("Your word must be at least %d %s", min, unit),
	}
}

func sameAsOriginal() *Rejection {
	return &Rejection{Reason: ReasonSameAsOriginal, Title: "Invalid word", Message: "You can't use that word"}
}

func invalidLetters() *Rejection {
	return &Rejection{Reason: ReasonInvalidLetters, Title: "Invalid word!", Message: "Can't use that combination of letters"}
}

func duplicateWord() *Rejection {
	return &Rejection{Reason: ReasonDuplicateWord, Title: "Duplicate word!", Message: "You've already used that one"}
}

func notAWord() *Rejection {
	return &Rejection{Reason: ReasonNotAWord, Title: "Invalid word", Message: "That's not a word"}
}

func oracleUnavailable(err error) *Rejection {
	return &Rejection{
		Reason:  ReasonOracleUnavailable,
		Title:   "Dictionary unavailable",
		Message: "Couldn't check that word right now",
		Err:     err,
	}
}

// Dictionary answers whether a word is correctly spelled in a language.
// A non-nil error means the dictionary could not be consulted; it is never
// treated as a yes or a no.
type Dictionary interface {
	IsCorrectlySpelled(ctx context.Context, word string, lang language.Tag) (bool, error)
}

// Accepted is the outcome of a successful Submit.
type Accepted struct {
	Word   string `json:"word"`
	Points int    `json:"points"` // points earned by Word
	Score  int    `json:"score"`  // running score after Word
}

// Snapshot is a read-only copy of a session for display.
type Snapshot struct {
	ID     string   `json:"id"`
	Active bool     `json:"active"`
	Root   string   `json:"root"`
	Words  []string `json:"words"` // most recent first
	Score  int      `json:"score"`
}
