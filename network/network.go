// Package network builds and queries the measurement graph of a
// localization problem: a noisy, visibility-limited distance graph over
// the ground-truth node positions.
//
// The graph is immutable after construction. An edge exists between two
// nodes iff their true distance does not exceed the visibility limit;
// pairs beyond visibility carry no measurement at all. Each measured
// edge holds one noisy distance sample, shared by both endpoints, drawn
// once at build time. Iterative algorithms must reuse the same graph
// across iterations.
package network

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"math/rand"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/seehuhn/mt19937"

	"github.com/k3ap/cooperative-localization/point"
)

var (
	// ErrNoPoints is returned when Build is given an empty problem.
	ErrNoPoints = errors.New("network: no points")
	// ErrNegativeSigma is returned for a negative noise deviation.
	ErrNegativeSigma = errors.New("network: sigma must be non-negative")
)

// Config controls measurement graph construction.
type Config struct {
	// Sigma is the standard deviation of the additive Gaussian noise on
	// every distance sample.
	Sigma float64

	// Visibility is the maximum true distance at which two nodes can
	// measure each other. Zero, negative or +Inf means unlimited.
	Visibility float64

	// Rand is the noise source. It must be provided explicitly for
	// reproducible builds; if nil, an unseeded Mersenne Twister is used.
	Rand *rand.Rand
}

// NewRand returns a seeded Mersenne Twister noise source suitable for
// Config.Rand. Two sources with the same seed produce identical builds.
func NewRand(seed int64) *rand.Rand {
	mt := mt19937.New()
	mt.Seed(seed)
	return rand.New(mt)
}

func (c Config) unlimited() bool {
	return c.Visibility <= 0 || math.IsInf(c.Visibility, 1)
}

// Graph is the measurement graph. All node indices refer to positions
// in the input slice passed to Build.
type Graph struct {
	n       int
	dim     int
	adj     []*roaring.Bitmap
	dist    map[uint64]float64
	anchors *roaring.Bitmap
}

func pairKey(i, j int) uint64 {
	if i > j {
		i, j = j, i
	}
	return uint64(uint32(i))<<32 | uint64(uint32(j))
}

// Build constructs the measurement graph from ground-truth records. The
// input is not mutated. With equal inputs and an equally seeded noise
// source, two builds are bit-identical: pairs are visited in a fixed
// (i, j) index order and one sample is drawn per measured pair.
//
// Noisy samples are reflected at zero (absolute value) so that no
// measured distance is negative.
func Build(truths []point.Truth, cfg Config) (*Graph, error) {
	if len(truths) == 0 {
		return nil, ErrNoPoints
	}
	if cfg.Sigma < 0 {
		return nil, ErrNegativeSigma
	}

	dim := truths[0].Dim()
	for i, t := range truths {
		if t.Dim() != dim {
			return nil, fmt.Errorf("network: point %d has dimension %d, expected %d", i, t.Dim(), dim)
		}
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(mt19937.New())
	}

	g := &Graph{
		n:       len(truths),
		dim:     dim,
		adj:     make([]*roaring.Bitmap, len(truths)),
		dist:    make(map[uint64]float64),
		anchors: roaring.New(),
	}
	for i := range g.adj {
		g.adj[i] = roaring.New()
	}
	for i, t := range truths {
		if t.Type() == point.Anchor {
			g.anchors.Add(uint32(i))
		}
	}

	for i := 0; i < len(truths); i++ {
		for j := i + 1; j < len(truths); j++ {
			d := truths[i].Distance(truths[j])
			if !cfg.unlimited() && d > cfg.Visibility {
				continue
			}

			sample := d + cfg.Sigma*rng.NormFloat64()
			g.dist[pairKey(i, j)] = math.Abs(sample)
			g.adj[i].Add(uint32(j))
			g.adj[j].Add(uint32(i))
		}
	}

	return g, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return g.n }

// Dim returns the coordinate dimension of the underlying problem.
func (g *Graph) Dim() int { return g.dim }

// Distance returns the noisy distance sample measured between i and j.
// The second return is false when the pair is beyond visibility.
func (g *Graph) Distance(i, j int) (float64, bool) {
	if i == j {
		return 0, false
	}
	d, ok := g.dist[pairKey(i, j)]
	return d, ok
}

// Degree returns the number of nodes visible from i.
func (g *Graph) Degree(i int) int {
	return int(g.adj[i].GetCardinality())
}

// Neighbors iterates over the nodes visible from i in ascending index
// order.
func (g *Graph) Neighbors(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		it := g.adj[i].Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Anchors returns the set of anchor nodes.
func (g *Graph) Anchors() *roaring.Bitmap {
	return g.anchors.Clone()
}

// VisibleAnchors returns the set of anchors visible from i.
func (g *Graph) VisibleAnchors(i int) *roaring.Bitmap {
	return roaring.And(g.adj[i], g.anchors)
}

// AnchorCount returns the number of anchors visible from i.
func (g *Graph) AnchorCount(i int) int {
	return int(g.adj[i].AndCardinality(g.anchors))
}

// Connected reports whether the measurement graph is connected.
func (g *Graph) Connected() bool {
	return int(g.component(0).GetCardinality()) == g.n
}

// Localizable reports whether node i has at least one anchor in its
// connected component. An agent without one cannot be positioned by any
// consistent algorithm.
func (g *Graph) Localizable(i int) bool {
	return g.component(i).AndCardinality(g.anchors) > 0
}

// component returns the set of nodes reachable from start, including
// start itself.
func (g *Graph) component(start int) *roaring.Bitmap {
	seen := roaring.New()
	seen.Add(uint32(start))
	frontier := []uint32{uint32(start)}

	for len(frontier) > 0 {
		node := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		it := g.adj[node].Iterator()
		for it.HasNext() {
			next := it.Next()
			if seen.CheckedAdd(next) {
				frontier = append(frontier, next)
			}
		}
	}

	return seen
}
