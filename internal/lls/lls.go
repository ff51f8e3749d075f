// Package lls implements the linearized least-squares position solve
// shared by the localization algorithms.
package lls

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrUnderDetermined is returned by Locate when there are fewer
// reference measurements than a unique solution requires.
var ErrUnderDetermined = errors.New("lls: not enough reference points")

// MinReferences is the number of reference measurements required for a
// well-posed solve in the given dimension.
func MinReferences(dim int) int { return dim + 1 }

// Locate solves the overdetermined system ‖x − r_k‖ = d_k for x.
//
// The nonlinear system is linearized by subtracting the squared
// equation of the first reference from each of the others, leaving the
// linear system A·x = b/2 with rows A_k = r_0 − r_k and
// b_k = |r_0|² − |r_k|² − d_0² + d_k², solved in the least-squares
// sense. Requires at least dim+1 references; a singular or
// near-singular system surfaces as an error for the caller's fallback.
func Locate(dim int, refs [][]float64, dists []float64) ([]float64, error) {
	if len(refs) < MinReferences(dim) {
		return nil, ErrUnderDetermined
	}

	m := len(refs) - 1
	a := mat.NewDense(m, dim, nil)
	b := mat.NewVecDense(m, nil)

	r0 := refs[0]
	d0 := dists[0]
	n0 := normSq(r0)

	for k := 1; k < len(refs); k++ {
		for c := 0; c < dim; c++ {
			a.Set(k-1, c, r0[c]-refs[k][c])
		}
		b.SetVec(k-1, n0-normSq(refs[k])-d0*d0+dists[k]*dists[k])
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("lls: %w", err)
	}

	out := make([]float64, dim)
	for c := range out {
		out[c] = 0.5 * x.AtVec(c)
	}
	return out, nil
}

// Centroid returns the mean of the reference points, or the zero vector
// when there are none.
func Centroid(dim int, refs [][]float64) []float64 {
	out := make([]float64, dim)
	if len(refs) == 0 {
		return out
	}
	for _, r := range refs {
		for c := 0; c < dim; c++ {
			out[c] += r[c]
		}
	}
	for c := range out {
		out[c] /= float64(len(refs))
	}
	return out
}

func normSq(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	return s
}
