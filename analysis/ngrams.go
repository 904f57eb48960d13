package analysis

import (
	"strings"

	"github.com/samber/lo"
)

// wordNGrams drops stop words then emits n-grams ordered by n, unigrams first.
func (a *Analyzer) wordNGrams(tokens []string) []string {
	if a.stopWords != nil {
		tokens = lo.Reject(tokens, func(t string, _ int) bool {
			_, stop := a.stopWords[t]
			return stop
		})
	}
	minN, maxN := a.opts.NGramRange[0], a.opts.NGramRange[1]
	if maxN == 1 {
		return tokens
	}

	var out []string
	if minN == 1 {
		out = append(out, tokens...)
		minN++
	}
	for n := minN; n <= min(maxN, len(tokens)); n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// charNGrams collapses whitespace runs and slides over the whole document.
func (a *Analyzer) charNGrams(doc string) []string {
	if collapsed, err := whitespaceRun.Replace(doc, " ", -1, -1); err == nil {
		doc = collapsed
	}
	text := []rune(doc)
	minN, maxN := a.opts.NGramRange[0], a.opts.NGramRange[1]

	var out []string
	for n := minN; n <= min(maxN, len(text)); n++ {
		for i := 0; i+n <= len(text); i++ {
			out = append(out, string(text[i:i+n]))
		}
	}
	return out
}

// charWBNGrams only builds n-grams inside word boundaries, each word padded with one space.
func (a *Analyzer) charWBNGrams(doc string) []string {
	minN, maxN := a.opts.NGramRange[0], a.opts.NGramRange[1]

	var out []string
	for _, word := range strings.Fields(doc) {
		w := []rune(" " + word + " ")
		for n := minN; n <= maxN; n++ {
			offset := 0
			out = append(out, string(w[offset:min(offset+n, len(w))]))
			for offset+n < len(w) {
				offset++
				out = append(out, string(w[offset:offset+n]))
			}
			// a word shorter than n is counted once
			if offset == 0 {
				break
			}
		}
	}
	return out
}
