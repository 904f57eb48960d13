package corpus

import (
	"cmp"
	"slices"

	"github.com/abadojack/whatlanggo"
)

const undetermined = "und"

type LanguageShare struct {
	Code      string
	Documents int
}

// Profile tallies the detected language of every document, most frequent first.
// Documents whose detection is not reliable count as "und".
func Profile(docs []Document) []LanguageShare {
	tally := make(map[string]int)
	for _, doc := range docs {
		info := whatlanggo.Detect(doc.Text)
		code := info.Lang.Iso6391()
		if !info.IsReliable() || code == "" {
			code = undetermined
		}
		tally[code]++
	}

	out := make([]LanguageShare, 0, len(tally))
	for code, n := range tally {
		out = append(out, LanguageShare{Code: code, Documents: n})
	}
	slices.SortFunc(out, func(a, b LanguageShare) int {
		if byCount := cmp.Compare(b.Documents, a.Documents); byCount != 0 {
			return byCount
		}
		return cmp.Compare(a.Code, b.Code)
	})
	return out
}
