package hashing

import "math"

// SparseVector is a row of the hashed matrix: sorted column indices and their values.
type SparseVector struct {
	Indices []int
	Values  []float64
	Dim     int
}

func NewSparseVector(dim int) SparseVector {
	return SparseVector{Dim: dim}
}

// At returns the value stored at idx, zero when absent.
func (sv SparseVector) At(idx int) float64 {
	for i, existing := range sv.Indices {
		if existing == idx {
			return sv.Values[i]
		}
	}
	return 0
}

func (sv SparseVector) ToDense() []float64 {
	dense := make([]float64, sv.Dim)
	for i, idx := range sv.Indices {
		if idx < sv.Dim {
			dense[idx] = sv.Values[i]
		}
	}
	return dense
}

// Nnz returns the number of stored entries.
func (sv SparseVector) Nnz() int {
	return len(sv.Indices)
}

func (sv SparseVector) Dot(dense []float64) float64 {
	var sum float64
	for i, idx := range sv.Indices {
		if idx < len(dense) {
			sum += sv.Values[i] * dense[idx]
		}
	}
	return sum
}

func (sv SparseVector) Norm(kind Norm) float64 {
	var sum float64
	for _, v := range sv.Values {
		switch kind {
		case NormL1:
			sum += math.Abs(v)
		default:
			sum += v * v
		}
	}
	if kind == NormL1 {
		return sum
	}
	return math.Sqrt(sum)
}

// Normalize scales the vector in place. A zero vector is left untouched.
func (sv SparseVector) Normalize(kind Norm) {
	norm := sv.Norm(kind)
	if norm == 0 {
		return
	}
	for i := range sv.Values {
		sv.Values[i] /= norm
	}
}
