package network

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k3ap/cooperative-localization/point"
)

func linePoints() []point.Truth {
	return []point.Truth{
		point.NewTruth(0, point.Anchor, 0, 0),
		point.NewTruth(1, point.Anchor, 10, 0),
		point.NewTruth(2, point.Agent, 5, 0),
	}
}

func TestBuildComplete(t *testing.T) {
	g, err := Build(linePoints(), Config{Rand: NewRand(1)})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 2, g.Dim())

	// Unlimited visibility: complete graph.
	for i := 0; i < 3; i++ {
		assert.Equal(t, 2, g.Degree(i))
	}

	d, ok := g.Distance(0, 2)
	require.True(t, ok)
	assert.InDelta(t, 5.0, d, 1e-12) // sigma 0

	_, ok = g.Distance(1, 1)
	assert.False(t, ok)
}

func TestBuildVisibilityLimit(t *testing.T) {
	g, err := Build(linePoints(), Config{Visibility: 6, Rand: NewRand(1)})
	require.NoError(t, err)

	// Anchor pair is 10 apart, beyond visibility.
	_, ok := g.Distance(0, 1)
	assert.False(t, ok)

	// Agent sees both anchors at distance 5.
	assert.Equal(t, 2, g.AnchorCount(2))
}

func TestBuildVisibilityBoundaryInclusive(t *testing.T) {
	g, err := Build(linePoints(), Config{Visibility: 5, Rand: NewRand(1)})
	require.NoError(t, err)

	_, ok := g.Distance(0, 2)
	assert.True(t, ok, "distance equal to visibility must be measurable")
}

func TestBuildExcludesAllEdges(t *testing.T) {
	g, err := Build(linePoints(), Config{Visibility: 3, Rand: NewRand(1)})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, g.Degree(i))
	}
	assert.False(t, g.Connected())
	assert.False(t, g.Localizable(2))
}

func TestBuildSymmetry(t *testing.T) {
	g, err := Build(linePoints(), Config{Sigma: 0.5, Rand: NewRand(42)})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			dij, okij := g.Distance(i, j)
			dji, okji := g.Distance(j, i)
			assert.Equal(t, okij, okji)
			assert.Equal(t, dij, dji)
		}
	}
}

func TestBuildDeterminism(t *testing.T) {
	build := func() *Graph {
		g, err := Build(linePoints(), Config{Sigma: 0.3, Rand: NewRand(7)})
		require.NoError(t, err)
		return g
	}

	g1 := build()
	g2 := build()

	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			d1, ok1 := g1.Distance(i, j)
			d2, ok2 := g2.Distance(i, j)
			assert.Equal(t, ok1, ok2)
			assert.Equal(t, d1, d2, "samples must be bit-identical")
		}
	}
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	truths := linePoints()
	before := make([]point.Truth, len(truths))
	copy(before, truths)

	_, err := Build(truths, Config{Sigma: 1, Rand: NewRand(3)})
	require.NoError(t, err)
	assert.Equal(t, before, truths)
}

func TestBuildNoiseNeverNegative(t *testing.T) {
	truths := []point.Truth{
		point.NewTruth(0, point.Anchor, 0, 0),
		point.NewTruth(1, point.Agent, 0.001, 0),
	}

	for seed := int64(0); seed < 50; seed++ {
		g, err := Build(truths, Config{Sigma: 10, Rand: NewRand(seed)})
		require.NoError(t, err)
		d, ok := g.Distance(0, 1)
		require.True(t, ok)
		assert.GreaterOrEqual(t, d, 0.0)
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(nil, Config{})
	assert.ErrorIs(t, err, ErrNoPoints)

	_, err = Build(linePoints(), Config{Sigma: -1})
	assert.ErrorIs(t, err, ErrNegativeSigma)

	mixed := []point.Truth{
		point.NewTruth(0, point.Anchor, 0, 0),
		point.NewTruth(1, point.Agent, 1, 2, 3),
	}
	_, err = Build(mixed, Config{})
	assert.Error(t, err)
}

func TestNeighborsOrderAndEarlyBreak(t *testing.T) {
	g, err := Build(linePoints(), Config{Rand: NewRand(1)})
	require.NoError(t, err)

	var got []int
	for n := range g.Neighbors(2) {
		got = append(got, n)
	}
	assert.Equal(t, []int{0, 1}, got)

	count := 0
	for range g.Neighbors(2) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestConnectivityQueries(t *testing.T) {
	// Two clusters: anchor+agent close together, another agent far away.
	truths := []point.Truth{
		point.NewTruth(0, point.Anchor, 0, 0),
		point.NewTruth(1, point.Agent, 1, 0),
		point.NewTruth(2, point.Agent, 100, 0),
	}

	g, err := Build(truths, Config{Visibility: 5, Rand: NewRand(1)})
	require.NoError(t, err)

	assert.False(t, g.Connected())
	assert.True(t, g.Localizable(1))
	assert.False(t, g.Localizable(2))

	anchors := g.VisibleAnchors(1)
	assert.True(t, anchors.Contains(0))
	assert.EqualValues(t, 1, anchors.GetCardinality())
}

func TestUnlimitedVisibilitySentinels(t *testing.T) {
	for _, vis := range []float64{0, -1, math.Inf(1)} {
		g, err := Build(linePoints(), Config{Visibility: vis, Rand: NewRand(1)})
		require.NoError(t, err)
		assert.Equal(t, 2, g.Degree(0))
	}
}
