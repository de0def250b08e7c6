// internal/words/words.go
//
// Root word source for the game engine.
//
// Responsibilities:
//   - Load the root word list from an environment-provided file or fall back to
//     the embedded default (assets/start.txt).
//   - Supply random root words (Next) and the date-seeded daily root word (Daily).
//
// Constraints:
//   • Root words are single words of lowercase letters, at least 2 long.
//   • Lists are normalized to lowercase and de-duplicated.
//   • An empty list is a load error; the server cannot start without roots.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/daily"
)

// ErrEmpty is returned by Load when no usable root word was found.
var ErrEmpty = errors.New("words: root word list is empty")

// List is an immutable list of root words.
type List struct {
	words []string
}

// Load reads root words from path, or from the embedded list when path is "".
func Load(path string) (*List, error) {
	raw, err := assets.ReadFile(path, assets.StartFile)
	if err != nil {
		return nil, fmt.Errorf("words: read %q: %w", path, err)
	}
	return FromSlice(raw)
}

// FromSlice builds a List from raw entries, keeping only valid root words.
func FromSlice(raw []string) (*List, error) {
	list := lo.Uniq(lo.Filter(raw, func(w string, _ int) bool { return isRoot(w) }))
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	return &List{words: list}, nil
}

// isRoot reports whether w is a lowercase single word of 2+ letters.
func isRoot(w string) bool {
	if utf8.RuneCountInString(w) < 2 {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) || !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// Next returns a cryptographically random root word.
func (l *List) Next() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return l.words[0]
	}
	return l.words[nBig.Int64()]
}

// Daily returns the root word for the calendar day of t (UTC); every caller
// using the same salt gets the same word for the same day.
func (l *List) Daily(t time.Time, salt string) (date string, root string) {
	idx := daily.WordIndex(t, salt, len(l.words))
	return daily.DateKey(t), l.words[idx]
}

// Len returns the number of root words.
func (l *List) Len() int { return len(l.words) }

// Contains reports whether w is one of the root words.
func (l *List) Contains(w string) bool { return lo.Contains(l.words, w) }
