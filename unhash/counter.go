package unhash

import (
	"cmp"
	"slices"
)

// TermCount is how many times a term was seen while fitting.
type TermCount struct {
	Term  string
	Count int
}

// termCounter counts terms and remembers the order in which they first appeared,
// so that equal counts keep a stable order.
type termCounter struct {
	counts map[string]int
	seen   map[string]int
}

func newTermCounter() *termCounter {
	return &termCounter{counts: make(map[string]int), seen: make(map[string]int)}
}

func (c *termCounter) Add(term string, n int) {
	if _, ok := c.seen[term]; !ok {
		c.seen[term] = len(c.seen)
	}
	c.counts[term] += n
}

func (c *termCounter) Update(terms []string) {
	for _, term := range terms {
		c.Add(term, 1)
	}
}

func (c *termCounter) Clear() {
	clear(c.counts)
	clear(c.seen)
}

func (c *termCounter) Len() int {
	return len(c.counts)
}

// MostCommon lists terms by decreasing count, ties broken by first appearance.
func (c *termCounter) MostCommon() []TermCount {
	out := make([]TermCount, 0, len(c.counts))
	for term, count := range c.counts {
		out = append(out, TermCount{Term: term, Count: count})
	}
	slices.SortFunc(out, func(a, b TermCount) int {
		if byCount := cmp.Compare(b.Count, a.Count); byCount != 0 {
			return byCount
		}
		return cmp.Compare(c.seen[a.Term], c.seen[b.Term])
	})
	return out
}
