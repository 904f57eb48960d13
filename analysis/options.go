package analysis

import (
	"fmt"
	"hashlens/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Kind string

const (
	KindWord     Kind = "word"
	KindChar     Kind = "char"
	KindCharWB   Kind = "char_wb"
	KindStandard Kind = "standard"
)

type AccentStrip string

const (
	AccentsNone    AccentStrip = ""
	AccentsASCII   AccentStrip = "ascii"
	AccentsUnicode AccentStrip = "unicode"
)

// DefaultTokenPattern selects tokens of two or more word characters.
const DefaultTokenPattern = `(?u)\b\w\w+\b`

// EnglishStopWordsName selects the built-in English list when used as the only stop word.
const EnglishStopWordsName = "english"

type Options struct {
	Kind         Kind        `validate:"required,oneof=word char char_wb standard"`
	Lowercase    bool        `validate:"-"`
	StripAccents AccentStrip `validate:"omitempty,oneof=ascii unicode"`
	TokenPattern string      `validate:"-"`
	NGramRange   [2]int      `validate:"-"`
	StopWords    []string    `validate:"-"`
}

// DefaultOptions mirrors the usual word analyzer: lowercased unigrams.
func DefaultOptions() Options {
	return Options{
		Kind:         KindWord,
		Lowercase:    true,
		TokenPattern: DefaultTokenPattern,
		NGramRange:   [2]int{1, 1},
	}
}

func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		switch {
		case o.Kind != KindWord && o.Kind != KindChar && o.Kind != KindCharWB && o.Kind != KindStandard:
			return fmt.Errorf("%w: %q", errors.ErrUnknownAnalyzer, o.Kind)
		case o.StripAccents != AccentsNone && o.StripAccents != AccentsASCII && o.StripAccents != AccentsUnicode:
			return fmt.Errorf("%w: %q", errors.ErrUnknownAccentStrip, o.StripAccents)
		}
		return err
	}
	minN, maxN := o.NGramRange[0], o.NGramRange[1]
	if minN < 1 || maxN < minN {
		return fmt.Errorf("%w: [%d, %d]", errors.ErrInvalidNGramRange, minN, maxN)
	}
	return nil
}

func (o Options) stopWords() map[string]struct{} {
	words := o.StopWords
	if len(words) == 1 && words[0] == EnglishStopWordsName {
		words = EnglishStopWords
	}
	if len(words) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
