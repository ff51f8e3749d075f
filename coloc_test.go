package coloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coloc "github.com/k3ap/cooperative-localization"
	"github.com/k3ap/cooperative-localization/point"
	"github.com/k3ap/cooperative-localization/solver"
)

func triangleTruths() []point.Truth {
	return []point.Truth{
		point.NewTruth(0, point.Anchor, 0, 0),
		point.NewTruth(1, point.Anchor, 6, 0),
		point.NewTruth(2, point.Anchor, 0, 6),
		point.NewTruth(3, point.Agent, 3, 4),
		point.NewTruth(4, point.Agent, 2, 2),
	}
}

func TestSolveNoiseless(t *testing.T) {
	res, err := coloc.Solve(triangleTruths(), "leastsquares",
		coloc.WithSigma(0),
		coloc.WithSeed(1),
	)
	require.NoError(t, err)
	require.Len(t, res.Estimate, 5)

	assert.InDelta(t, 3, res.Estimate[3][0], 1e-9)
	assert.InDelta(t, 4, res.Estimate[3][1], 1e-9)
	assert.InDelta(t, 2, res.Estimate[4][0], 1e-9)
	assert.InDelta(t, 2, res.Estimate[4][1], 1e-9)
	assert.Empty(t, res.UnderDetermined)
}

func TestSolveAnchorsPinned(t *testing.T) {
	res, err := coloc.Solve(triangleTruths(), "leastsquarescoop",
		coloc.WithSigma(0.5),
		coloc.WithSeed(7),
	)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0}, res.Estimate[0])
	assert.Equal(t, []float64{6, 0}, res.Estimate[1])
	assert.Equal(t, []float64{0, 6}, res.Estimate[2])
}

func TestSolveDeterministic(t *testing.T) {
	opts := []coloc.Option{coloc.WithSigma(0.3), coloc.WithSeed(42)}

	a, err := coloc.Solve(triangleTruths(), "leastsquarescoop", opts...)
	require.NoError(t, err)
	b, err := coloc.Solve(triangleTruths(), "leastsquarescoop", opts...)
	require.NoError(t, err)

	assert.Equal(t, a.Estimate, b.Estimate)
}

func TestSolveUnknownAlgorithm(t *testing.T) {
	_, err := coloc.Solve(triangleTruths(), "nope")
	assert.ErrorIs(t, err, coloc.ErrUnknownAlgorithm)
}

func TestSolveEmpty(t *testing.T) {
	_, err := coloc.Solve(nil, "leastsquares", coloc.WithSeed(1))
	assert.ErrorIs(t, err, coloc.ErrNoPoints)
}

func TestAnimateFrames(t *testing.T) {
	frames, err := coloc.Animate(triangleTruths(), "leastsquarescoop",
		coloc.WithSigma(0),
		coloc.WithIterations(12),
		coloc.WithSeed(3),
	)
	require.NoError(t, err)
	require.Len(t, frames, 12)

	res, err := coloc.Solve(triangleTruths(), "leastsquarescoop",
		coloc.WithSigma(0),
		coloc.WithIterations(12),
		coloc.WithSeed(3),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Estimate, frames[len(frames)-1])
}

func TestAnimateUnsupported(t *testing.T) {
	_, err := coloc.Animate(triangleTruths(), "leastsquares", coloc.WithSeed(1))
	assert.ErrorIs(t, err, coloc.ErrAnimateUnsupported)
}

func TestAlgorithms(t *testing.T) {
	names := coloc.Algorithms()
	assert.Contains(t, names, "leastsquares")
	assert.Contains(t, names, "leastsquarescoop")
	assert.Contains(t, names, "mds")
	assert.Equal(t, solver.Names(), names)
}
