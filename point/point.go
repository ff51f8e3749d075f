// Package point defines the node records of a localization problem.
//
// Two views exist for every node. Truth carries the ground-truth
// coordinates and is consumed only by the measurement builder and by
// scoring/rendering collaborators. Point is the restricted view handed
// to estimation algorithms: it exposes coordinates for anchors only, so
// no algorithm can reach an agent's true position through its API.
package point

import (
	"fmt"
	"math"
	"slices"
)

// Type classifies a node as a fixed anchor or a mobile agent.
type Type uint8

const (
	// Anchor is a node with a known, fixed position.
	Anchor Type = iota
	// Agent is a mobile node whose position must be estimated.
	Agent
)

func (t Type) String() string {
	switch t {
	case Anchor:
		return "anchor"
	case Agent:
		return "agent"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// Truth is the ground-truth record of one node. The coordinates are
// reachable only through anchor-gated accessors and distance helpers,
// never directly.
type Truth struct {
	id     int
	typ    Type
	coords []float64
}

// NewTruth creates a ground-truth record. The id is the node's position
// in the input order and must be unique within a problem.
func NewTruth(id int, typ Type, coords ...float64) Truth {
	return Truth{
		id:     id,
		typ:    typ,
		coords: slices.Clone(coords),
	}
}

// ID returns the stable input-order index of the node.
func (t Truth) ID() int { return t.id }

// Type returns the node classification.
func (t Truth) Type() Type { return t.typ }

// Dim returns the coordinate dimension.
func (t Truth) Dim() int { return len(t.coords) }

// Distance returns the true Euclidean distance to another node.
func (t Truth) Distance(o Truth) float64 {
	return math.Sqrt(t.DistanceSq(o))
}

// DistanceSq returns the squared true Euclidean distance to another node.
func (t Truth) DistanceSq(o Truth) float64 {
	var s float64
	for i, x := range t.coords {
		d := x - o.coords[i]
		s += d * d
	}
	return s
}

// Position returns a copy of the node's true coordinates. It exists
// for the measurement builder and for scoring/rendering collaborators;
// algorithms are never handed a Truth and cannot reach it.
func (t Truth) Position() []float64 {
	return slices.Clone(t.coords)
}

// ErrorTo returns the Euclidean distance between the node's true
// position and an estimated position. Used for scoring only.
func (t Truth) ErrorTo(est []float64) float64 {
	var s float64
	for i, x := range t.coords {
		d := x - est[i]
		s += d * d
	}
	return math.Sqrt(s)
}

// Restricted returns the view of this node that may be handed to an
// estimation algorithm.
func (t Truth) Restricted() Point {
	p := Point{
		id:  t.id,
		typ: t.typ,
		dim: len(t.coords),
	}
	if t.typ == Anchor {
		p.coords = slices.Clone(t.coords)
	}
	return p
}

func (t Truth) String() string {
	return fmt.Sprintf("P(%v, %s)", t.coords, t.typ)
}

// Restrict converts a ground-truth slice into the restricted views, in
// the same order.
func Restrict(truths []Truth) []Point {
	points := make([]Point, len(truths))
	for i, t := range truths {
		points[i] = t.Restricted()
	}
	return points
}

// Point is the restricted view of a node. For agents it carries no
// coordinate data at all.
type Point struct {
	id     int
	typ    Type
	dim    int
	coords []float64
}

// ID returns the stable input-order index of the node.
func (p Point) ID() int { return p.id }

// Type returns the node classification.
func (p Point) Type() Type { return p.typ }

// Dim returns the coordinate dimension.
func (p Point) Dim() int { return p.dim }

// Coords returns a copy of the node's known position. The second return
// is false for agents, whose true position is hidden from algorithms.
func (p Point) Coords() ([]float64, bool) {
	if p.typ != Anchor {
		return nil, false
	}
	return slices.Clone(p.coords), true
}
