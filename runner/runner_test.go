package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k3ap/cooperative-localization/network"
	"github.com/k3ap/cooperative-localization/point"
	"github.com/k3ap/cooperative-localization/solver"
	"github.com/k3ap/cooperative-localization/solver/coop"
	"github.com/k3ap/cooperative-localization/solver/lsq"
)

func problem(t *testing.T) ([]point.Point, *network.Graph) {
	t.Helper()
	truths := []point.Truth{
		point.NewTruth(0, point.Anchor, 0, 0),
		point.NewTruth(1, point.Anchor, 10, 0),
		point.NewTruth(2, point.Anchor, 0, 10),
		point.NewTruth(3, point.Agent, 3, 4),
	}
	g, err := network.Build(truths, network.Config{Rand: network.NewRand(1)})
	require.NoError(t, err)
	return point.Restrict(truths), g
}

func TestRun(t *testing.T) {
	points, g := problem(t)

	res, err := Run(lsq.New(), points, g, solver.Config{})
	require.NoError(t, err)
	require.Len(t, res.Estimate, 4)
	assert.InDelta(t, 3.0, res.Estimate[3][0], 1e-9)
}

func TestAnimateFrameCount(t *testing.T) {
	points, g := problem(t)

	frames, err := Animate(coop.New(), points, g, solver.Config{Iterations: 9})
	require.NoError(t, err)
	assert.Len(t, frames, 9)

	for _, frame := range frames {
		assert.Len(t, frame, 4)
	}
}

func TestAnimateCapabilityMissing(t *testing.T) {
	points, g := problem(t)

	_, err := Animate(lsq.New(), points, g, solver.Config{Iterations: 5})
	assert.ErrorIs(t, err, solver.ErrAnimateUnsupported)
}
