// Package dictionary provides the spell-checking backends the game consults to
// decide whether a submitted word is real.
//
// Two backends are available:
//   - WordList: an in-memory set loaded from a newline-delimited file (or the
//     embedded default list).
//   - Lexicon: a KWG lexicon file as used by word-golib based tools.
//
// Each backend serves a single language; lookups for another base language
// fail with ErrUnsupportedLanguage.
package dictionary

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/assets"
)

// ErrUnsupportedLanguage is returned when asked about a language the backend
// does not hold.
var ErrUnsupportedLanguage = errors.New("dictionary: unsupported language")

// WordList is a set of known words for one language.
type WordList struct {
	lang  language.Tag
	words map[string]struct{}
}

// NewWordList builds a WordList from already normalized words.
func NewWordList(lang language.Tag, words []string) *WordList {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return &WordList{lang: lang, words: set}
}

// LoadWordList reads words from path, or the embedded default list when path
// is "".
func LoadWordList(path string, lang language.Tag) (*WordList, error) {
	words, err := assets.ReadFile(path, assets.DictionaryFile)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read %q: %w", path, err)
	}
	return NewWordList(lang, words), nil
}

// IsCorrectlySpelled reports whether word is in the list.
func (d *WordList) IsCorrectlySpelled(ctx context.Context, word string, lang language.Tag) (bool, error) {
	if err := checkLookup(ctx, d.lang, lang); err != nil {
		return false, err
	}
	_, ok := d.words[word]
	return ok, nil
}

// Len returns the number of words in the list.
func (d *WordList) Len() int { return len(d.words) }

// checkLookup rejects cancelled lookups and languages other than have.
func checkLookup(ctx context.Context, have, want language.Tag) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	hb, _ := have.Base()
	wb, _ := want.Base()
	if hb != wb {
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, want)
	}
	return nil
}
