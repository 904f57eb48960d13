package hashing

import (
	"fmt"
	"hashlens/errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/require"
)

func newVectorizer(t *testing.T, modify func(o *Options)) *HashingVectorizer {
	t.Helper()
	opts := DefaultOptions()
	modify(&opts)
	vec, err := New(opts)
	require.NoError(t, err)
	return vec
}

func words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("word_%d", i)
	}
	return out
}

func TestHashTerm_ColumnAndSign(t *testing.T) {
	req := require.New(t)
	vec := newVectorizer(t, func(o *Options) { o.NFeatures = 8 })

	var negatives, positives int
	for _, w := range words(100) {
		column, sign := vec.HashTerm(w)
		h := int32(murmur3.Sum32([]byte(w)))
		req.GreaterOrEqual(column, 0)
		req.Less(column, 8)
		if h < 0 {
			req.Equal(-1, sign)
			req.Equal(int(-h)%8, column)
			negatives++
		} else {
			req.Equal(1, sign)
			req.Equal(int(h)%8, column)
			positives++
		}
	}
	req.Positive(negatives)
	req.Positive(positives)
}

func TestHashTerm_MinInt32(t *testing.T) {
	const term = "t1626042018"
	require.Equal(t, uint32(0x80000000), murmur3.Sum32([]byte(term)))

	tests := []struct {
		nFeatures  int
		wantColumn int
	}{
		{10, 8},
		{8, 0},
		{DefaultNFeatures, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d features", tt.nFeatures), func(t *testing.T) {
			req := require.New(t)
			vec := newVectorizer(t, func(o *Options) { o.NFeatures = tt.nFeatures })
			column, sign := vec.HashTerm(term)
			req.Equal(tt.wantColumn, column)
			req.Equal(-1, sign)
		})
	}
}

func TestHashTerm_WithoutAlternateSign(t *testing.T) {
	req := require.New(t)
	vec := newVectorizer(t, func(o *Options) {
		o.NFeatures = 16
		o.AlternateSign = false
	})
	for _, w := range words(50) {
		_, sign := vec.HashTerm(w)
		req.Equal(1, sign)
	}
}

func TestHashTerms_NonNegativeIsAlwaysPositive(t *testing.T) {
	req := require.New(t)
	signed := newVectorizer(t, func(o *Options) { o.NFeatures = 16 })
	unsigned := newVectorizer(t, func(o *Options) {
		o.NFeatures = 16
		o.NonNegative = true
	})

	terms := words(50)
	signedColumns, _ := signed.HashTerms(terms)
	columns, signs := unsigned.HashTerms(terms)
	req.Equal(signedColumns, columns)
	for _, s := range signs {
		req.Equal(1, s)
	}
}

func TestTransform_SingleTermIsSignedUnitVector(t *testing.T) {
	req := require.New(t)
	vec := newVectorizer(t, func(o *Options) { o.NFeatures = 8 })

	for _, w := range words(32) {
		column, sign := vec.HashTerm(w)
		expected := make([]float64, 8)
		expected[column] = float64(sign)
		req.InDeltaSlice(expected, vec.Transform([]string{w})[0].ToDense(), 1e-12)
	}
}

func TestTransform_Norms(t *testing.T) {
	doc := "aa aa bb"
	tests := []struct {
		name   string
		modify func(o *Options)
		check  func(req *require.Assertions, vec *HashingVectorizer, sv SparseVector)
	}{
		{
			name:   "No norm keeps raw counts",
			modify: func(o *Options) { o.Norm = NormNone },
			check: func(req *require.Assertions, vec *HashingVectorizer, sv SparseVector) {
				column, sign := vec.HashTerm("aa")
				req.Equal(float64(2*sign), sv.At(column))
			},
		},
		{
			name:   "L2 norm yields a unit vector",
			modify: func(o *Options) {},
			check: func(req *require.Assertions, _ *HashingVectorizer, sv SparseVector) {
				req.InDelta(1.0, sv.Norm(NormL2), 1e-12)
			},
		},
		{
			name:   "L1 norm sums to one",
			modify: func(o *Options) { o.Norm = NormL1 },
			check: func(req *require.Assertions, vec *HashingVectorizer, sv SparseVector) {
				req.InDelta(1.0, sv.Norm(NormL1), 1e-12)
				column, _ := vec.HashTerm("aa")
				req.InDelta(2.0/3.0, math.Abs(sv.At(column)), 1e-12)
			},
		},
		{
			name: "Binary marks presence",
			modify: func(o *Options) {
				o.Binary = true
				o.Norm = NormNone
			},
			check: func(req *require.Assertions, _ *HashingVectorizer, sv SparseVector) {
				req.Equal(2, sv.Nnz())
				req.Equal([]float64{1, 1}, sv.Values)
			},
		},
		{
			name: "Non negative takes absolute values",
			modify: func(o *Options) {
				o.NonNegative = true
				o.Norm = NormNone
			},
			check: func(req *require.Assertions, vec *HashingVectorizer, sv SparseVector) {
				column, _ := vec.HashTerm("aa")
				req.Equal(2.0, sv.At(column))
				for _, v := range sv.Values {
					req.Positive(v)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			vec := newVectorizer(t, tt.modify)
			sv := vec.Transform([]string{doc})[0]
			req.Equal(DefaultNFeatures, sv.Dim)
			tt.check(req, vec, sv)
		})
	}
}

func TestTransform_SignCancellation(t *testing.T) {
	req := require.New(t)
	vec := newVectorizer(t, func(o *Options) {
		o.NFeatures = 2
		o.Norm = NormNone
	})

	// find two terms sharing a column with opposite signs
	var first, second string
	candidates := words(64)
	for i, a := range candidates {
		ca, sa := vec.HashTerm(a)
		for _, b := range candidates[i+1:] {
			cb, sb := vec.HashTerm(b)
			if ca == cb && sa != sb {
				first, second = a, b
				break
			}
		}
		if second != "" {
			break
		}
	}
	req.NotEmpty(second)

	doc := first + " " + second
	req.Equal(0, vec.Transform([]string{doc})[0].Nnz())

	binary := newVectorizer(t, func(o *Options) {
		o.NFeatures = 2
		o.Norm = NormNone
		o.Binary = true
	})
	column, _ := binary.HashTerm(first)
	req.Equal(1.0, binary.Transform([]string{doc})[0].At(column))
}

func TestTransform_EmptyDocument(t *testing.T) {
	req := require.New(t)
	vec := newVectorizer(t, func(o *Options) { o.NFeatures = 4 })
	sv := vec.Transform([]string{""})[0]
	req.Equal(0, sv.Nnz())
	req.Equal([]float64{0, 0, 0, 0}, sv.ToDense())
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(o *Options)
		wantErr error
	}{
		{"Zero features", func(o *Options) { o.NFeatures = 0 }, errors.ErrInvalidOptions},
		{"Unknown norm", func(o *Options) { o.Norm = "l3" }, errors.ErrInvalidOptions},
		{"Unknown analyzer", func(o *Options) { o.Analysis.Kind = "sentence" }, errors.ErrUnknownAnalyzer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			_, err := New(opts)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProperty_SingleTermHashesToItsColumn(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a lone term lands on its column with its sign", prop.ForAll(
		func(nFeatures int, id int) bool {
			opts := DefaultOptions()
			opts.NFeatures = nFeatures
			opts.Norm = NormNone
			vec, err := New(opts)
			if err != nil {
				return false
			}
			term := fmt.Sprintf("term_%d", id)
			column, sign := vec.HashTerm(term)
			dense := vec.Transform([]string{term})[0].ToDense()
			for i, v := range dense {
				want := 0.0
				if i == column {
					want = float64(sign)
				}
				if v != want {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 64),
		gen.IntRange(0, 10000),
	))

	properties.Property("l2 normalized rows have unit length", prop.ForAll(
		func(ids []int) bool {
			vec, err := New(DefaultOptions())
			if err != nil {
				return false
			}
			doc := ""
			for _, id := range ids {
				doc += fmt.Sprintf("tok_%d ", id)
			}
			sv := vec.Transform([]string{doc})[0]
			if sv.Nnz() == 0 {
				return true
			}
			return math.Abs(sv.Norm(NormL2)-1) < 1e-9
		},
		gen.SliceOf(gen.IntRange(0, 500)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
