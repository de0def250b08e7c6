package dictionary

import (
	"context"
	"fmt"
	"strings"

	wglconfig "github.com/domino14/word-golib/config"
	"github.com/domino14/word-golib/kwg"
	"github.com/domino14/word-golib/tilemapping"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// Lexicon checks words against a KWG word graph.
type Lexicon struct {
	name string
	lang language.Tag
	lex  kwg.Lexicon
}

// LoadLexicon loads lexicon name (e.g. "NWL23") from the lexica directory
// under dataPath.
func LoadLexicon(dataPath, name string, lang language.Tag) (*Lexicon, error) {
	k, err := kwg.Get(&wglconfig.Config{DataPath: dataPath}, name)
	if err != nil {
		return nil, fmt.Errorf("dictionary: load lexicon %s: %w", name, err)
	}
	log.Info().Str("lexicon", name).Str("path", dataPath).Msg("loaded lexicon")
	return &Lexicon{name: name, lang: lang, lex: kwg.Lexicon{KWG: *k}}, nil
}

// Name returns the lexicon name.
func (l *Lexicon) Name() string { return l.name }

// IsCorrectlySpelled reports whether word is in the lexicon. Words containing
// letters outside the lexicon's alphabet are not words.
func (l *Lexicon) IsCorrectlySpelled(ctx context.Context, word string, lang language.Tag) (bool, error) {
	if err := checkLookup(ctx, l.lang, lang); err != nil {
		return false, err
	}
	mw, err := tilemapping.ToMachineWord(strings.ToUpper(word), l.lex.GetAlphabet())
	if err != nil {
		return false, nil
	}
	return l.lex.HasWord(mw), nil
}
