package lls

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Sqrt(s)
}

func TestLocateExact2D(t *testing.T) {
	refs := [][]float64{{0, 0}, {10, 0}, {0, 10}}
	truth := []float64{3, 4}

	dists := make([]float64, len(refs))
	for i, r := range refs {
		dists[i] = dist(truth, r)
	}

	got, err := Locate(2, refs, dists)
	require.NoError(t, err)
	assert.InDelta(t, truth[0], got[0], 1e-9)
	assert.InDelta(t, truth[1], got[1], 1e-9)
}

func TestLocateExact3D(t *testing.T) {
	refs := [][]float64{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}, {0, 0, 10}}
	truth := []float64{1, 2, 3}

	dists := make([]float64, len(refs))
	for i, r := range refs {
		dists[i] = dist(truth, r)
	}

	got, err := Locate(3, refs, dists)
	require.NoError(t, err)
	for c := range truth {
		assert.InDelta(t, truth[c], got[c], 1e-9)
	}
}

func TestLocateOverdetermined(t *testing.T) {
	// Five references, consistent distances: least squares must still
	// recover the exact position.
	refs := [][]float64{{0, 0}, {10, 0}, {0, 10}, {10, 10}, {5, -3}}
	truth := []float64{7, 2}

	dists := make([]float64, len(refs))
	for i, r := range refs {
		dists[i] = dist(truth, r)
	}

	got, err := Locate(2, refs, dists)
	require.NoError(t, err)
	assert.InDelta(t, truth[0], got[0], 1e-9)
	assert.InDelta(t, truth[1], got[1], 1e-9)
}

func TestLocateUnderDetermined(t *testing.T) {
	_, err := Locate(2, [][]float64{{0, 0}, {1, 0}}, []float64{1, 1})
	assert.ErrorIs(t, err, ErrUnderDetermined)

	_, err = Locate(2, nil, nil)
	assert.ErrorIs(t, err, ErrUnderDetermined)
}

func TestLocateCollinearReferences(t *testing.T) {
	// All references on the x axis: the normal system is singular in 2D.
	refs := [][]float64{{0, 0}, {5, 0}, {10, 0}}
	dists := []float64{5, 1, 5}

	_, err := Locate(2, refs, dists)
	assert.Error(t, err)
}

func TestCentroid(t *testing.T) {
	assert.Equal(t, []float64{0, 0}, Centroid(2, nil))
	assert.Equal(t, []float64{2, 3}, Centroid(2, [][]float64{{1, 2}, {3, 4}}))
}
