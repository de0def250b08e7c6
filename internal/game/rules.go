// internal/game/rules.go
//
// Validation of submitted words.
// A candidate is checked against an ordered rule chain and the first failing
// rule decides the rejection the player sees:
//
//  1. MinLength    : at least MinLength characters.
//  2. NotTrivial   : not the root word itself.
//  3. LetterSubset : every letter drawn from an unused letter of the root.
//  4. Unique       : not already accepted this round.
//  5. RealWord     : the dictionary knows it.
//
// Only RealWord consults the dictionary.

package game

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const defaultMinLength = 1

// Validator runs the rule chain. The zero value of MinLength and Language
// fall back to 1 and English.
type Validator struct {
	Dictionary Dictionary
	MinLength  int
	Language   language.Tag
}

// check is the input to a single rule.
type check struct {
	candidate string
	root      string
	accepted  []string
}

type rule func(ctx context.Context, c check) *Rejection

// Validate returns nil if candidate may be accepted, or a *Rejection naming the
// first rule it fails. candidate and root must already be normalized.
// Validate has no side effects.
func (v Validator) Validate(ctx context.Context, candidate, root string, accepted []string) error {
	c := check{candidate: candidate, root: root, accepted: accepted}
	for _, r := range v.rules() {
		if rej := r(ctx, c); rej != nil {
			return rej
		}
	}
	return nil
}

func (v Validator) rules() []rule {
	return []rule{
		v.minLength,
		notTrivial,
		letterSubset,
		unique,
		v.realWord,
	}
}

func (v Validator) minimum() int {
	if v.MinLength < 1 {
		return defaultMinLength
	}
	return v.MinLength
}

func (v Validator) language() language.Tag {
	if v.Language == language.Und {
		return language.English
	}
	return v.Language
}

func (v Validator) minLength(_ context.Context, c check) *Rejection {
	if utf8.RuneCountInString(c.candidate) < v.minimum() {
		return tooShort(v.minimum())
	}
	return nil
}

func notTrivial(_ context.Context, c check) *Rejection {
	if c.candidate == c.root {
		return sameAsOriginal()
	}
	return nil
}

// letterSubset treats the root as a multiset of letters and consumes one
// occurrence per candidate letter. Whitespace never matches: root words are
// single words, so multi-word candidates are turned down here.
func letterSubset(_ context.Context, c check) *Rejection {
	if strings.IndexFunc(c.candidate, unicode.IsSpace) >= 0 {
		return invalidLetters()
	}
	pool := make(map[rune]int, len(c.root))
	for _, r := range c.root {
		pool[r]++
	}
	for _, r := range c.candidate {
		if pool[r] == 0 {
			return invalidLetters()
		}
		pool[r]--
	}
	return nil
}

func unique(_ context.Context, c check) *Rejection {
	if lo.Contains(c.accepted, c.candidate) {
		return duplicateWord()
	}
	return nil
}

func (v Validator) realWord(ctx context.Context, c check) *Rejection {
	if v.Dictionary == nil {
		return oracleUnavailable(errNoDictionary)
	}
	ok, err := v.Dictionary.IsCorrectlySpelled(ctx, c.candidate, v.language())
	if err != nil {
		return oracleUnavailable(err)
	}
	if !ok {
		return notAWord()
	}
	return nil
}

// Normalize trims surrounding whitespace and lowercases raw using the rules of
// lang.
func Normalize(raw string, lang language.Tag) string {
	return cases.Lower(lang).String(strings.TrimSpace(raw))
}
