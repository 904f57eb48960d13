// Package explain attributes the weights of a model trained on hashed features back to terms.
package explain

import (
	"cmp"
	"fmt"
	"hashlens/errors"
	"hashlens/unhash"
	"math"
	"slices"
)

type Attribution struct {
	Index   int
	Feature string
	Weight  float64
}

type Explainer struct {
	names       unhash.FeatureNames
	columnSigns []float64
	maxNames    int
}

// NewExplainer reads names with flipped columns so that the most frequent term of each
// column is positive; weights are flipped the same way through the column signs.
func NewExplainer(ivec *unhash.InvertibleHashingVectorizer, maxNames int) *Explainer {
	return &Explainer{
		names:       ivec.FeatureNames(false),
		columnSigns: ivec.ColumnSigns(),
		maxNames:    maxNames,
	}
}

// Top returns the k largest weights by magnitude; k <= 0 keeps every non-zero weight.
// An extra trailing weight is read as the intercept.
func (e *Explainer) Top(weights []float64, k int) ([]Attribution, error) {
	names := e.names
	switch len(weights) {
	case names.NFeatures():
	case names.NFeatures() + 1:
		names = names.WithBias("<BIAS>")
	default:
		return nil, fmt.Errorf("%w: got %d, want %d or %d with an intercept",
			errors.ErrWeightsLength, len(weights), names.NFeatures(), names.NFeatures()+1)
	}

	var out []Attribution
	for idx, w := range weights {
		if w == 0 {
			continue
		}
		if idx < len(e.columnSigns) {
			w *= e.columnSigns[idx]
		}
		out = append(out, Attribution{Index: idx, Feature: names.Format(idx, " | ", e.maxNames), Weight: w})
	}

	slices.SortStableFunc(out, func(a, b Attribution) int {
		return cmp.Compare(math.Abs(b.Weight), math.Abs(a.Weight))
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out, nil
}
