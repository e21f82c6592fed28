package geom

import "fmt"

// Vector is a free vector in R^n, stored as a flat slice of float64.
type Vector struct {
	data []float64
}

// NewVector builds a Vector from the given components.
// Stage 1 (Validate): reject an empty component list.
// Stage 2 (Finalize): copy components so the caller's backing array can't
// alias the Vector's storage.
func NewVector(components ...float64) (Vector, error) {
	if len(components) == 0 {
		return Vector{}, fmt.Errorf("NewVector: %w", ErrEmptyInput)
	}
	data := make([]float64, len(components))
	copy(data, components)
	return Vector{data: data}, nil
}

// Dim returns the number of components.
func (v Vector) Dim() int {
	return len(v.data)
}

// At returns the i-th component, or ErrOutOfBounds if i is out of range.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfBounds)
	}
	return v.data[i], nil
}

// Components returns a copy of the underlying components.
func (v Vector) Components() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)
	return out
}

// sameDim checks a and b share a dimension, used by every binary operator.
func sameDim(op string, a, b Vector) error {
	if a.Dim() != b.Dim() {
		return fmt.Errorf("Vector.%s: %d != %d: %w", op, a.Dim(), b.Dim(), ErrDimensionMismatch)
	}
	return nil
}

// Add returns the componentwise sum of v and w.
func (v Vector) Add(w Vector) (Vector, error) {
	if err := sameDim("Add", v, w); err != nil {
		return Vector{}, err
	}
	out := make([]float64, v.Dim())
	for i := range out {
		out[i] = v.data[i] + w.data[i]
	}
	return Vector{data: out}, nil
}

// Sub returns the componentwise difference v - w.
func (v Vector) Sub(w Vector) (Vector, error) {
	if err := sameDim("Sub", v, w); err != nil {
		return Vector{}, err
	}
	out := make([]float64, v.Dim())
	for i := range out {
		out[i] = v.data[i] - w.data[i]
	}
	return Vector{data: out}, nil
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector {
	out := make([]float64, v.Dim())
	for i, c := range v.data {
		out[i] = c * s
	}
	return Vector{data: out}
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) (float64, error) {
	if err := sameDim("Dot", v, w); err != nil {
		return 0, err
	}
	var sum float64
	for i := range v.data {
		sum += v.data[i] * w.data[i]
	}
	return sum, nil
}

// NormSquared returns the squared Euclidean norm of v.
func (v Vector) NormSquared() float64 {
	var sum float64
	for _, c := range v.data {
		sum += c * c
	}
	return sum
}

// Lift appends f(v) as a new trailing component, returning a vector in one
// higher dimension.
func (v Vector) Lift(f func(Vector) float64) Vector {
	out := make([]float64, v.Dim()+1)
	copy(out, v.data)
	out[len(out)-1] = f(v)
	return Vector{data: out}
}

// String renders v as a bracketed, space-separated component list.
func (v Vector) String() string {
	return fmt.Sprintf("%v", v.data)
}
