// Package score evaluates position estimates against ground truth. It
// is a reporting collaborator: it may read true coordinates and is
// never handed to algorithms.
package score

import (
	"fmt"
	"math"

	"github.com/k3ap/cooperative-localization/point"
	"github.com/k3ap/cooperative-localization/solver"
)

// Summary aggregates the estimation errors of one run.
type Summary struct {
	// Agents is the number of agent nodes scored.
	Agents int

	// MaxPositionError is the largest distance between any agent's true
	// and estimated position.
	MaxPositionError float64

	// PositionRMSE is the root mean square of agent position errors.
	PositionRMSE float64

	// MaxDistanceError is the largest discrepancy between true and
	// estimated pairwise distances, over all node pairs.
	MaxDistanceError float64

	// DistanceRMSE is the root mean square of pairwise distance
	// discrepancies.
	DistanceRMSE float64
}

// Summarize scores an estimate against the ground truth it was derived
// from. Position errors cover agents only; distance errors cover every
// ordered node pair, anchors included.
func Summarize(truths []point.Truth, est solver.Estimate) (*Summary, error) {
	if len(truths) != len(est) {
		return nil, fmt.Errorf("score: %d points but %d estimates", len(truths), len(est))
	}
	for i, row := range est {
		if len(row) != truths[i].Dim() {
			return nil, fmt.Errorf("score: estimate %d has dimension %d, expected %d", i, len(row), truths[i].Dim())
		}
	}

	s := &Summary{}

	var posSq float64
	for i, tr := range truths {
		if tr.Type() != point.Agent {
			continue
		}
		err := tr.ErrorTo(est[i])
		s.MaxPositionError = math.Max(s.MaxPositionError, err)
		posSq += err * err
		s.Agents++
	}
	if s.Agents > 0 {
		s.PositionRMSE = math.Sqrt(posSq / float64(s.Agents))
	}

	var distSq float64
	pairs := 0
	for i := range truths {
		for j := range truths {
			trueDist := truths[i].Distance(truths[j])
			estDist := dist(est[i], est[j])
			err := math.Abs(estDist - trueDist)
			s.MaxDistanceError = math.Max(s.MaxDistanceError, err)
			distSq += err * err
			pairs++
		}
	}
	s.DistanceRMSE = math.Sqrt(distSq / float64(pairs))

	return s, nil
}

// PerAgent returns the position error of every agent, keyed by node
// index.
func PerAgent(truths []point.Truth, est solver.Estimate) (map[int]float64, error) {
	if len(truths) != len(est) {
		return nil, fmt.Errorf("score: %d points but %d estimates", len(truths), len(est))
	}

	errs := make(map[int]float64)
	for i, tr := range truths {
		if tr.Type() != point.Agent {
			continue
		}
		errs[i] = tr.ErrorTo(est[i])
	}
	return errs, nil
}

func dist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Sqrt(s)
}
