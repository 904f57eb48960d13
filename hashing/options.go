package hashing

import (
	"fmt"
	"hashlens/analysis"
	"hashlens/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Norm string

const (
	NormL2   Norm = "l2"
	NormL1   Norm = "l1"
	NormNone Norm = "none"
)

// DefaultNFeatures is 2^20 columns.
const DefaultNFeatures = 1 << 20

type Options struct {
	NFeatures     int  `validate:"gt=0"`
	Binary        bool `validate:"-"`
	Norm          Norm `validate:"oneof=l1 l2 none"`
	AlternateSign bool `validate:"-"`
	// NonNegative takes the absolute value of every summed entry.
	NonNegative bool             `validate:"-"`
	Analysis    analysis.Options `validate:"-"`
}

func DefaultOptions() Options {
	return Options{
		NFeatures:     DefaultNFeatures,
		Norm:          NormL2,
		AlternateSign: true,
		Analysis:      analysis.DefaultOptions(),
	}
}

func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidOptions, err)
	}
	return nil
}

// AlwaysPositive reports whether every hashed value is non-negative,
// in which case term signs carry no information.
func (o Options) AlwaysPositive() bool {
	return o.Binary || o.NonNegative || !o.AlternateSign
}
