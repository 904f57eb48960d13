// Package unhash recovers, approximately, which terms produced each column of a hashed
// feature vector. Terms seen while fitting are hashed again and grouped per column,
// most frequent first.
package unhash

import (
	"maps"
	"slices"

	"github.com/samber/lo"
)

// Hasher is the part of a hashing vectorizer the unhasher needs.
type Hasher interface {
	NFeatures() int
	HashTerms(terms []string) ([]int, []int)
}

type FeatureUnhasher struct {
	hasher       Hasher
	unknTemplate string
	counts       *termCounter
	dirty        bool

	terms       []string
	termColumns []int
	termSigns   []int
	collisions  map[int][]int
	columnSigns []float64
}

func NewFeatureUnhasher(hasher Hasher, unknTemplate string) *FeatureUnhasher {
	if unknTemplate == "" {
		unknTemplate = DefaultUnknownTemplate
	}
	return &FeatureUnhasher{
		hasher:       hasher,
		unknTemplate: unknTemplate,
		counts:       newTermCounter(),
		dirty:        true,
	}
}

func (u *FeatureUnhasher) NFeatures() int {
	return u.hasher.NFeatures()
}

// Fit forgets previous counts, counts the terms and recalculates immediately.
func (u *FeatureUnhasher) Fit(terms []string) *FeatureUnhasher {
	u.counts.Clear()
	u.PartialFit(terms)
	u.Recalculate(true)
	return u
}

// PartialFit adds the terms to the counts. Derived attributes are rebuilt lazily.
func (u *FeatureUnhasher) PartialFit(terms []string) *FeatureUnhasher {
	u.counts.Update(terms)
	u.dirty = true
	return u
}

// Counts exports the term counts, most common first.
func (u *FeatureUnhasher) Counts() []TermCount {
	return u.counts.MostCommon()
}

// LoadCounts replaces the counts; the order of counts sets the tie order.
func (u *FeatureUnhasher) LoadCounts(counts []TermCount) *FeatureUnhasher {
	u.counts.Clear()
	for _, tc := range counts {
		u.counts.Add(tc.Term, tc.Count)
	}
	u.dirty = true
	return u
}

// Recalculate rebuilds the per-term and per-column attributes when counts changed or force is set.
func (u *FeatureUnhasher) Recalculate(force bool) {
	if !u.dirty && !force {
		return
	}
	u.terms = lo.Map(u.counts.MostCommon(), func(tc TermCount, _ int) string {
		return tc.Term
	})
	u.termColumns, u.termSigns = u.hasher.HashTerms(u.terms)

	u.collisions = make(map[int][]int)
	for termID, column := range u.termColumns {
		u.collisions[column] = append(u.collisions[column], termID)
	}

	u.columnSigns = make([]float64, u.hasher.NFeatures())
	for i := range u.columnSigns {
		u.columnSigns[i] = 1
	}
	for column, termIDs := range u.collisions {
		if u.termSigns[termIDs[0]] < 0 {
			u.columnSigns[column] = -1
		}
	}
	u.dirty = false
}

// Terms are the fitted terms, most common first.
func (u *FeatureUnhasher) Terms() []string {
	u.Recalculate(false)
	return slices.Clone(u.terms)
}

func (u *FeatureUnhasher) TermColumns() []int {
	u.Recalculate(false)
	return slices.Clone(u.termColumns)
}

func (u *FeatureUnhasher) TermSigns() []int {
	u.Recalculate(false)
	return slices.Clone(u.termSigns)
}

// Collisions maps each known column to the ids (positions in Terms) of its terms.
func (u *FeatureUnhasher) Collisions() map[int][]int {
	u.Recalculate(false)
	return maps.Clone(u.collisions)
}

// ColumnSigns is -1 for columns whose most common term hashes negatively, +1 elsewhere.
func (u *FeatureUnhasher) ColumnSigns() []float64 {
	u.Recalculate(false)
	return slices.Clone(u.columnSigns)
}

// FeatureNames lists the candidates of each known column.
// With alwaysPositive every sign is +1. Otherwise, unless alwaysSigned, a column whose
// first term is negative has all its signs flipped so that its first term reads positive.
func (u *FeatureUnhasher) FeatureNames(alwaysSigned, alwaysPositive bool) FeatureNames {
	u.Recalculate(false)

	known := make(map[int][]Collision, len(u.collisions))
	for column, termIDs := range u.collisions {
		invert := !alwaysPositive && !alwaysSigned && u.termSigns[termIDs[0]] < 0
		known[column] = lo.Map(termIDs, func(id int, _ int) Collision {
			sign := u.termSigns[id]
			switch {
			case alwaysPositive:
				sign = 1
			case invert:
				sign = -sign
			}
			return Collision{Name: u.terms[id], Sign: sign}
		})
	}
	return NewFeatureNames(known, u.hasher.NFeatures(), u.unknTemplate)
}
