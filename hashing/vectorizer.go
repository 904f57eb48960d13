// Package hashing implements the hashing trick over analyzed documents.
package hashing

import (
	"hashlens/analysis"
	"math"
	"slices"

	"github.com/samber/lo"
	"github.com/spaolacci/murmur3"
)

// HashingVectorizer maps documents to fixed-size sparse vectors without keeping a vocabulary.
type HashingVectorizer struct {
	opts     Options
	analyzer *analysis.Analyzer
}

// New validates the options and builds the analyzer.
func New(opts Options) (*HashingVectorizer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	a, err := analysis.New(opts.Analysis)
	if err != nil {
		return nil, err
	}
	return &HashingVectorizer{opts: opts, analyzer: a}, nil
}

func (v *HashingVectorizer) Options() Options {
	return v.opts
}

func (v *HashingVectorizer) NFeatures() int {
	return v.opts.NFeatures
}

func (v *HashingVectorizer) Binary() bool {
	return v.opts.Binary
}

func (v *HashingVectorizer) NonNegative() bool {
	return v.opts.NonNegative
}

func (v *HashingVectorizer) AlternateSign() bool {
	return v.opts.AlternateSign
}

// Analyze returns the terms the vectorizer hashes for a document.
func (v *HashingVectorizer) Analyze(doc string) []string {
	return v.analyzer.Analyze(doc)
}

// HashTerm returns the column of a term and the sign it is added with.
// The hash is MurmurHash3 (x86, 32 bits, seed 0) read as a signed integer.
func (v *HashingVectorizer) HashTerm(term string) (int, int) {
	n := v.opts.NFeatures
	h := int32(murmur3.Sum32([]byte(term)))

	var column int
	if h == math.MinInt32 {
		// |MinInt32| overflows, keep the column equal to 2^31 mod n
		column = (math.MaxInt32 - (n - 1)) % n
	} else {
		column = int(lo.Ternary(h < 0, -h, h)) % n
	}

	sign := 1
	if v.opts.AlternateSign && h < 0 {
		sign = -1
	}
	return column, sign
}

// HashTerms hashes each term as its own row: the single non-zero value that term produces
// before binarization and normalization.
func (v *HashingVectorizer) HashTerms(terms []string) ([]int, []int) {
	columns := make([]int, len(terms))
	signs := make([]int, len(terms))
	for i, term := range terms {
		columns[i], signs[i] = v.HashTerm(term)
		if v.opts.NonNegative {
			signs[i] = 1
		}
	}
	return columns, signs
}

// Transform hashes every document. Duplicate columns are summed, then the vector is
// optionally made non-negative, binarized and normalized, in that order.
func (v *HashingVectorizer) Transform(docs []string) []SparseVector {
	return lo.Map(docs, func(doc string, _ int) SparseVector {
		return v.transformOne(doc)
	})
}

func (v *HashingVectorizer) transformOne(doc string) SparseVector {
	sums := make(map[int]float64)
	for _, term := range v.analyzer.Analyze(doc) {
		column, sign := v.HashTerm(term)
		sums[column] += float64(sign)
	}

	indices := lo.Keys(sums)
	slices.Sort(indices)

	vec := NewSparseVector(v.opts.NFeatures)
	for _, idx := range indices {
		value := sums[idx]
		if v.opts.NonNegative {
			value = math.Abs(value)
		}
		switch {
		case v.opts.Binary:
			// stored entries are kept even when their terms cancelled out
			value = 1
		case value == 0:
			continue
		}
		vec.Indices = append(vec.Indices, idx)
		vec.Values = append(vec.Values, value)
	}

	if v.opts.Norm != NormNone {
		vec.Normalize(v.opts.Norm)
	}
	return vec
}
