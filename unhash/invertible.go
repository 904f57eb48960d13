package unhash

import (
	"hashlens/hashing"

	"github.com/samber/lo"
)

// InvertibleHashingVectorizer wraps a HashingVectorizer and learns, from sample documents,
// which terms stand behind each hashed column. Transform is left to the wrapped vectorizer.
type InvertibleHashingVectorizer struct {
	vec      *hashing.HashingVectorizer
	unhasher *FeatureUnhasher
}

type Option func(*options)

type options struct {
	unknTemplate string
}

// WithUnknownTemplate sets the fmt template used to name columns no term was seen for.
func WithUnknownTemplate(template string) Option {
	return func(o *options) {
		o.unknTemplate = template
	}
}

func New(vec *hashing.HashingVectorizer, opts ...Option) *InvertibleHashingVectorizer {
	o := options{unknTemplate: DefaultUnknownTemplate}
	for _, opt := range opts {
		opt(&o)
	}
	return &InvertibleHashingVectorizer{
		vec:      vec,
		unhasher: NewFeatureUnhasher(vec, o.unknTemplate),
	}
}

// InvertAndFit wraps vec and fits it on docs.
func InvertAndFit(vec *hashing.HashingVectorizer, docs []string, opts ...Option) *InvertibleHashingVectorizer {
	return New(vec, opts...).Fit(docs)
}

func (iv *InvertibleHashingVectorizer) Vectorizer() *hashing.HashingVectorizer {
	return iv.vec
}

func (iv *InvertibleHashingVectorizer) Unhasher() *FeatureUnhasher {
	return iv.unhasher
}

func (iv *InvertibleHashingVectorizer) NFeatures() int {
	return iv.vec.NFeatures()
}

// Fit restarts the term counts from docs.
func (iv *InvertibleHashingVectorizer) Fit(docs []string) *InvertibleHashingVectorizer {
	iv.unhasher.Fit(iv.terms(docs))
	return iv
}

// PartialFit adds the terms of docs to what was already seen.
func (iv *InvertibleHashingVectorizer) PartialFit(docs []string) *InvertibleHashingVectorizer {
	iv.unhasher.PartialFit(iv.terms(docs))
	return iv
}

func (iv *InvertibleHashingVectorizer) Transform(docs []string) []hashing.SparseVector {
	return iv.vec.Transform(docs)
}

func (iv *InvertibleHashingVectorizer) FeatureNames(alwaysSigned bool) FeatureNames {
	return iv.unhasher.FeatureNames(alwaysSigned, iv.alwaysPositive())
}

// ColumnSigns is all +1 when the vectorizer never emits negative values.
func (iv *InvertibleHashingVectorizer) ColumnSigns() []float64 {
	if iv.alwaysPositive() {
		return lo.Times(iv.vec.NFeatures(), func(_ int) float64 { return 1 })
	}
	return iv.unhasher.ColumnSigns()
}

func (iv *InvertibleHashingVectorizer) alwaysPositive() bool {
	return iv.vec.Options().AlwaysPositive()
}

func (iv *InvertibleHashingVectorizer) terms(docs []string) []string {
	return lo.FlatMap(docs, func(doc string, _ int) []string {
		return iv.vec.Analyze(doc)
	})
}
