// Package mds implements localization by multidimensional scaling, after
// "Sensor Positioning in Wireless Ad-hoc Sensor Networks Using
// Multidimensional Scaling" by X. Ji and H. Zha.
//
// The measured distances are embedded into the plane by an iterative
// SMACOF-style majorization, producing a configuration that is correct
// up to rotation, reflection and translation. Three non-collinear
// anchors are then used to fix the configuration onto true coordinates.
// Only 2-dimensional problems are supported.
package mds

import (
	"errors"
	"math"
	"math/rand"

	"github.com/seehuhn/mt19937"
	"gonum.org/v1/gonum/mat"

	"github.com/k3ap/cooperative-localization/network"
	"github.com/k3ap/cooperative-localization/point"
	"github.com/k3ap/cooperative-localization/solver"
)

// Name is the registry name of the algorithm.
const Name = "mds"

func init() {
	solver.Register(Name, func() solver.Solver { return New() })
}

var (
	// ErrNotPlanar is returned for problems that are not 2-dimensional.
	ErrNotPlanar = errors.New("mds: only 2-dimensional problems are supported")
	// ErrTooFewAnchors is returned when fewer than three anchors exist.
	ErrTooFewAnchors = errors.New("mds: at least three anchors are required")
	// ErrCollinearAnchors is returned when no non-collinear anchor
	// triple exists to fix the embedding.
	ErrCollinearAnchors = errors.New("mds: anchors are collinear")
)

const collinearTol = 1e-3

// Solver is the MDS algorithm. It is one-shot only.
type Solver struct{}

// New creates the algorithm.
func New() *Solver { return &Solver{} }

// Name implements solver.Solver.
func (s *Solver) Name() string { return Name }

// Solve implements solver.Solver.
func (s *Solver) Solve(points []point.Point, g *network.Graph, cfg solver.Config) (*solver.Result, error) {
	if g.Dim() != 2 {
		return nil, ErrNotPlanar
	}
	n := g.Len()

	var anchorIDs []int
	for i, p := range points {
		if p.Type() == point.Anchor {
			anchorIDs = append(anchorIDs, i)
		}
	}
	if len(anchorIDs) < 3 {
		return nil, ErrTooFewAnchors
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(mt19937.New())
	}

	// Incidence matrix of the measurement graph; (V + 1) is invertible
	// for a connected graph.
	v := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := range g.Neighbors(i) {
			v.Set(i, i, v.At(i, i)+1)
			v.Set(i, j, v.At(i, j)-1)
		}
	}

	ones := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ones.Set(i, j, 1)
		}
	}

	var sum mat.Dense
	sum.Add(v, ones)
	var vinv mat.Dense
	if err := vinv.Inverse(&sum); err != nil {
		return nil, errors.New("mds: incidence matrix is singular")
	}

	// Random initial embedding in [-0.5, 0.5).
	x := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, rng.Float64()-0.5)
		x.Set(i, 1, rng.Float64()-0.5)
	}

	for it := 0; it < cfg.IterationCount(); it++ {
		b := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for j := range g.Neighbors(i) {
				measured, ok := g.Distance(i, j)
				if !ok {
					continue
				}
				cur := math.Hypot(x.At(i, 0)-x.At(j, 0), x.At(i, 1)-x.At(j, 1))
				if cur < 1e-12 {
					// Coincident estimates give no direction.
					continue
				}
				val := measured / cur
				b.Set(i, i, b.At(i, i)+val)
				b.Set(i, j, b.At(i, j)-val)
			}
		}

		var bx mat.Dense
		bx.Mul(b, x)
		var nx mat.Dense
		nx.Mul(&vinv, &bx)
		x = &nx
	}

	est, err := align(points, x, anchorIDs)
	if err != nil {
		return nil, err
	}
	solver.PinAnchors(est, points)

	return &solver.Result{Estimate: est}, nil
}

// align maps the embedded configuration onto true coordinates using
// three non-collinear anchors: a linear transform Q fixing the two
// anchor difference vectors, plus the translation moving the first
// anchor into place.
func align(points []point.Point, x *mat.Dense, anchorIDs []int) (solver.Estimate, error) {
	collinear := func(i1, i2, i3 int) bool {
		x1 := x.At(i1, 0) - x.At(i2, 0)
		y1 := x.At(i1, 1) - x.At(i2, 1)
		x2 := x.At(i1, 0) - x.At(i3, 0)
		y2 := x.At(i1, 1) - x.At(i3, 1)
		return math.Abs(x1*y2-x2*y1) < collinearTol
	}

	for collinear(anchorIDs[0], anchorIDs[1], anchorIDs[len(anchorIDs)-1]) {
		anchorIDs = anchorIDs[:len(anchorIDs)-1]
		if len(anchorIDs) < 3 {
			return nil, ErrCollinearAnchors
		}
	}

	a1, a2, a3 := anchorIDs[0], anchorIDs[1], anchorIDs[len(anchorIDs)-1]
	truth := func(i int) []float64 {
		coords, _ := points[i].Coords()
		return coords
	}
	w1, w2, w3 := truth(a1), truth(a2), truth(a3)

	x1, y1 := x.At(a1, 0), x.At(a1, 1)
	x2, y2 := x.At(a2, 0), x.At(a2, 1)
	x3, y3 := x.At(a3, 0), x.At(a3, 1)

	n1 := y1*(x2-x3) + y2*(x3-x1) + y3*(x1-x2)
	n2 := x3*(y1-y2) + x1*(y2-y3) + x2*(y3-y1)

	t1, t2, t3 := w1[0], w2[0], w3[0]
	s1, s2, s3 := w1[1], w2[1], w3[1]

	var q [2][2]float64
	q[0][0] = (y1*(t2-t3) + y2*(t3-t1) + y3*(t1-t2)) / n1
	q[0][1] = (t3*(x2-x1) + t2*(x1-x3) + t1*(x3-x2)) / n2
	q[1][0] = (y1*(s2-s3) + y2*(s3-s1) + y3*(s1-s2)) / n1
	q[1][1] = (s3*(x2-x1) + s2*(x1-x3) + s1*(x3-x2)) / n2

	est := solver.NewEstimate(len(points), 2)
	for i := range points {
		dx := x.At(i, 0) - x1
		dy := x.At(i, 1) - y1
		est[i][0] = q[0][0]*dx + q[0][1]*dy + w1[0]
		est[i][1] = q[1][0]*dx + q[1][1]*dy + w1[1]
	}
	return est, nil
}
