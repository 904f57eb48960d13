// Package analysis turns raw documents into the terms fed to the hasher.
package analysis

import (
	"fmt"
	"hashlens/errors"
	"strings"
	"unicode"

	blugeanalysis "github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/analyzer"
	"github.com/dlclark/regexp2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp2.MustCompile(`\s\s+`, regexp2.None)

type Analyzer struct {
	opts      Options
	pattern   *regexp2.Regexp
	stopWords map[string]struct{}
	standard  *blugeanalysis.Analyzer
}

// New validates the options and prepares the analyzer.
// A leading "(?u)" flag on the token pattern is accepted and ignored.
func New(opts Options) (*Analyzer, error) {
	if opts.Kind == "" {
		opts.Kind = KindWord
	}
	if opts.TokenPattern == "" {
		opts.TokenPattern = DefaultTokenPattern
	}
	if opts.NGramRange == [2]int{} {
		opts.NGramRange = [2]int{1, 1}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	a := &Analyzer{opts: opts, stopWords: opts.stopWords()}
	switch opts.Kind {
	case KindWord:
		pattern, err := regexp2.Compile(strings.TrimPrefix(opts.TokenPattern, "(?u)"), regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrInvalidTokenRegexp, err)
		}
		if groups := pattern.GetGroupNumbers(); len(groups) > 2 {
			return nil, fmt.Errorf("%w: more than one capturing group in %q",
				errors.ErrInvalidTokenRegexp, opts.TokenPattern)
		}
		a.pattern = pattern
	case KindStandard:
		a.standard = analyzer.NewStandardAnalyzer()
	}
	return a, nil
}

func (a *Analyzer) Options() Options {
	return a.opts
}

// Analyze preprocesses the document then splits it into terms according to the analyzer kind.
func (a *Analyzer) Analyze(doc string) []string {
	doc = a.preprocess(doc)
	switch a.opts.Kind {
	case KindChar:
		return a.charNGrams(doc)
	case KindCharWB:
		return a.charWBNGrams(doc)
	case KindStandard:
		return a.wordNGrams(a.standardTokens(doc))
	default:
		return a.wordNGrams(a.tokens(doc))
	}
}

func (a *Analyzer) preprocess(doc string) string {
	if a.opts.Lowercase {
		doc = strings.ToLower(doc)
	}
	switch a.opts.StripAccents {
	case AccentsUnicode:
		doc = stripAccents(doc, runes.Remove(runes.In(unicode.Mn)))
	case AccentsASCII:
		doc = stripAccents(doc, runes.Remove(runes.Predicate(func(r rune) bool {
			return r > unicode.MaxASCII
		})))
	}
	return doc
}

func stripAccents(doc string, remove transform.Transformer) string {
	if isASCII(doc) {
		return doc
	}
	out, _, err := transform.String(transform.Chain(norm.NFKD, remove), doc)
	if err != nil {
		return doc
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func (a *Analyzer) tokens(doc string) []string {
	var out []string
	m, err := a.pattern.FindStringMatch(doc)
	for err == nil && m != nil {
		token := m.String()
		if groups := m.Groups(); len(groups) == 2 {
			token = groups[1].String()
		}
		out = append(out, token)
		m, err = a.pattern.FindNextMatch(m)
	}
	return out
}

func (a *Analyzer) standardTokens(doc string) []string {
	stream := a.standard.Analyze([]byte(doc))
	out := make([]string, 0, len(stream))
	for _, token := range stream {
		out = append(out, string(token.Term))
	}
	return out
}
