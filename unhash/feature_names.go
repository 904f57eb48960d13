package unhash

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// DefaultUnknownTemplate names a column no fitted term hashes to.
const DefaultUnknownTemplate = "FEATURE[%d]"

// Collision is one candidate term of a hashed column.
type Collision struct {
	Name string
	Sign int
}

// FeatureNames maps every hashed column to its candidate terms, most frequent first.
// An optional bias slot sits right after the last column.
type FeatureNames struct {
	known        map[int][]Collision
	nFeatures    int
	unknTemplate string
	biasName     string
}

func NewFeatureNames(known map[int][]Collision, nFeatures int, unknTemplate string) FeatureNames {
	if known == nil {
		known = make(map[int][]Collision)
	}
	if unknTemplate == "" {
		unknTemplate = DefaultUnknownTemplate
	}
	return FeatureNames{known: known, nFeatures: nFeatures, unknTemplate: unknTemplate}
}

// WithBias returns a copy that exposes a bias feature at index NFeatures().
func (f FeatureNames) WithBias(name string) FeatureNames {
	f.biasName = name
	return f
}

func (f FeatureNames) NFeatures() int {
	return f.nFeatures
}

// Len counts the columns plus the bias slot if any.
func (f FeatureNames) Len() int {
	if f.biasName != "" {
		return f.nFeatures + 1
	}
	return f.nFeatures
}

func (f FeatureNames) HasBias() bool {
	return f.biasName != ""
}

// Collisions returns the candidates of a column, false when the column is unknown.
func (f FeatureNames) Collisions(idx int) ([]Collision, bool) {
	c, ok := f.known[idx]
	return c, ok
}

// All lists the candidates of every column in index order, nil for unknown columns.
func (f FeatureNames) All() [][]Collision {
	out := make([][]Collision, f.nFeatures)
	for idx := range out {
		out[idx] = f.known[idx]
	}
	return out
}

// Known is the number of columns with at least one candidate.
func (f FeatureNames) Known() int {
	return len(f.known)
}

// KnownColumns lists the columns with at least one candidate in ascending order.
func (f FeatureNames) KnownColumns() []int {
	columns := lo.Keys(f.known)
	slices.Sort(columns)
	return columns
}

func (f FeatureNames) Name(idx int) string {
	return f.Format(idx, " | ", 0)
}

// Format renders a column as "a | (-)b". maxNames > 0 keeps only the first candidates.
func (f FeatureNames) Format(idx int, sep string, maxNames int) string {
	if f.biasName != "" && idx == f.nFeatures {
		return f.biasName
	}
	collisions, ok := f.known[idx]
	if !ok {
		return fmt.Sprintf(f.unknTemplate, idx)
	}
	shortened := maxNames > 0 && len(collisions) > maxNames
	if shortened {
		collisions = collisions[:maxNames]
	}
	parts := lo.Map(collisions, func(c Collision, _ int) string {
		if c.Sign < 0 {
			return "(-)" + c.Name
		}
		return c.Name
	})
	if shortened {
		parts = append(parts, "...")
	}
	return strings.Join(parts, sep)
}

// Filter returns the indices whose rendered name satisfies pred.
func (f FeatureNames) Filter(pred func(idx int, name string) bool) []int {
	var out []int
	for idx := 0; idx < f.Len(); idx++ {
		if pred(idx, f.Name(idx)) {
			out = append(out, idx)
		}
	}
	return out
}
