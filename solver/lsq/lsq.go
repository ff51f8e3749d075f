// Package lsq implements the non-cooperative anchor-only least-squares
// localization algorithm.
//
// Every agent is solved independently from its measured distances to
// visible anchors. An agent seeing fewer than dim+1 anchors is
// under-determined; its estimate falls back to the centroid of the
// anchors it does see (the zero vector when it sees none).
package lsq

import (
	"github.com/k3ap/cooperative-localization/internal/lls"
	"github.com/k3ap/cooperative-localization/network"
	"github.com/k3ap/cooperative-localization/point"
	"github.com/k3ap/cooperative-localization/solver"
)

// Name is the registry name of the algorithm.
const Name = "leastsquares"

func init() {
	solver.Register(Name, func() solver.Solver { return New() })
}

// Solver is the anchor-only least-squares algorithm. It does not
// iterate and therefore implements only the one-shot capability.
type Solver struct{}

// New creates the algorithm.
func New() *Solver { return &Solver{} }

// Name implements solver.Solver.
func (s *Solver) Name() string { return Name }

// Solve implements solver.Solver.
func (s *Solver) Solve(points []point.Point, g *network.Graph, cfg solver.Config) (*solver.Result, error) {
	est, under := Estimate(points, g, cfg)
	return &solver.Result{Estimate: est, UnderDetermined: under}, nil
}

// Estimate runs the anchor-only solve and returns the raw estimate
// together with the agents that were under-determined. It is shared
// with the cooperative algorithm, which uses it as its initial
// condition.
func Estimate(points []point.Point, g *network.Graph, cfg solver.Config) (solver.Estimate, []solver.UnderDetermined) {
	log := cfg.Log()
	dim := g.Dim()
	est := solver.NewEstimate(len(points), dim)
	solver.PinAnchors(est, points)

	var under []solver.UnderDetermined

	for i, p := range points {
		if p.Type() == point.Anchor {
			continue
		}

		refs, dists := anchorMeasurements(points, g, i)

		if len(refs) < lls.MinReferences(dim) {
			under = append(under, solver.UnderDetermined{Node: i, Have: len(refs), Need: lls.MinReferences(dim)})
			copy(est[i], lls.Centroid(dim, refs))
			log.Debug("agent under-determined", "node", i, "anchors", len(refs))
			continue
		}

		x, err := lls.Locate(dim, refs, dists)
		if err != nil {
			// Singular reference geometry; same fallback as too few
			// anchors.
			copy(est[i], lls.Centroid(dim, refs))
			log.Debug("singular local system", "node", i, "error", err)
			continue
		}

		copy(est[i], x)
	}

	return est, under
}

func anchorMeasurements(points []point.Point, g *network.Graph, i int) (refs [][]float64, dists []float64) {
	it := g.VisibleAnchors(i).Iterator()
	for it.HasNext() {
		a := int(it.Next())
		coords, ok := points[a].Coords()
		if !ok {
			continue
		}
		d, ok := g.Distance(i, a)
		if !ok {
			continue
		}
		refs = append(refs, coords)
		dists = append(dists, d)
	}
	return refs, dists
}
