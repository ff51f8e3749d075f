// Package coop implements the cooperative networked least-squares
// localization algorithm.
//
// Agents start from the anchor-only estimate (centroid fallback when
// under-determined). Each iteration, every agent re-solves its local
// least-squares system from measured distances to visible anchors and
// to visible agents, substituting each neighboring agent's current
// estimate as a pseudo-anchor. All agents update simultaneously from
// the previous iteration's snapshot, so record order never biases the
// result. The iteration count is a fixed bound; there is no
// convergence-based early stop.
package coop

import (
	"iter"
	"log/slog"

	"github.com/k3ap/cooperative-localization/internal/lls"
	"github.com/k3ap/cooperative-localization/network"
	"github.com/k3ap/cooperative-localization/point"
	"github.com/k3ap/cooperative-localization/solver"
	"github.com/k3ap/cooperative-localization/solver/lsq"
)

// Name is the registry name of the algorithm.
const Name = "leastsquarescoop"

func init() {
	solver.Register(Name, func() solver.Solver { return New() })
}

// Solver is the cooperative least-squares algorithm. It supports both
// one-shot solving and animation.
type Solver struct{}

// New creates the algorithm.
func New() *Solver { return &Solver{} }

// Name implements solver.Solver.
func (s *Solver) Name() string { return Name }

// Solve implements solver.Solver. The result is the estimate after
// cfg.IterationCount() refinement steps; under-determined agents are
// those reported by the anchor-only initialization.
func (s *Solver) Solve(points []point.Point, g *network.Graph, cfg solver.Config) (*solver.Result, error) {
	cur, under := lsq.Estimate(points, g, cfg)
	log := cfg.Log()
	for it := 0; it < cfg.IterationCount(); it++ {
		cur = step(points, g, cur, log)
	}
	return &solver.Result{Estimate: cur, UnderDetermined: under}, nil
}

// Animate implements solver.Animator. The sequence yields one snapshot
// per refinement step, exactly cfg.IterationCount() in total when
// consumed fully.
func (s *Solver) Animate(points []point.Point, g *network.Graph, cfg solver.Config) iter.Seq[solver.Estimate] {
	return func(yield func(solver.Estimate) bool) {
		cur, _ := lsq.Estimate(points, g, cfg)
		log := cfg.Log()
		for it := 0; it < cfg.IterationCount(); it++ {
			cur = step(points, g, cur, log)
			if !yield(cur.Clone()) {
				return
			}
		}
	}
}

// step computes one synchronous refinement from prev. Every agent's
// update reads only prev, never the estimates already written this
// iteration.
func step(points []point.Point, g *network.Graph, prev solver.Estimate, log *slog.Logger) solver.Estimate {
	dim := g.Dim()
	next := prev.Clone()

	for i, p := range points {
		if p.Type() == point.Anchor {
			continue
		}

		var refs [][]float64
		var dists []float64
		for n := range g.Neighbors(i) {
			d, ok := g.Distance(i, n)
			if !ok {
				continue
			}
			if coords, ok := points[n].Coords(); ok {
				refs = append(refs, coords)
			} else {
				refs = append(refs, prev[n])
			}
			dists = append(dists, d)
		}

		if len(refs) < lls.MinReferences(dim) {
			// Keep the previous estimate for this agent.
			continue
		}

		x, err := lls.Locate(dim, refs, dists)
		if err != nil {
			log.Debug("singular local system, keeping previous estimate", "node", i, "error", err)
			continue
		}
		copy(next[i], x)
	}

	return next
}
