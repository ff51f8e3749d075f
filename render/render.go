// Package render draws 2-dimensional localization results: a single
// image of true versus estimated positions, or one frame per snapshot
// of an iterative run. It is a visualization collaborator and may read
// ground-truth coordinates.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/k3ap/cooperative-localization/point"
	"github.com/k3ap/cooperative-localization/solver"
)

// ErrNotPlanar is returned for problems that are not 2-dimensional.
var ErrNotPlanar = errors.New("render: only 2-dimensional problems can be drawn")

var (
	anchorColor   = color.RGBA{B: 255, A: 255}
	agentColor    = color.RGBA{R: 255, A: 255}
	estimateColor = color.RGBA{G: 200, A: 255}
	segmentColor  = color.RGBA{A: 255}
	pointRadius   = vg.Points(3)
	imageSize     = 5 * vg.Inch
)

// Image renders truths and their estimated positions into path. The
// image format follows the file extension (.png, .svg, .pdf).
//
// Anchors are drawn in blue, true agent positions in red, estimates in
// green, with a segment connecting each agent's true and estimated
// position.
func Image(truths []point.Truth, est solver.Estimate, path string) error {
	if len(truths) != len(est) {
		return fmt.Errorf("render: %d points but %d estimates", len(truths), len(est))
	}
	if len(truths) > 0 && truths[0].Dim() != 2 {
		return ErrNotPlanar
	}

	p := plot.New()
	p.HideAxes()

	var anchors, agents, estimates plotter.XYs
	for i, tr := range truths {
		pos := tr.Position()
		if tr.Type() == point.Anchor {
			anchors = append(anchors, plotter.XY{X: pos[0], Y: pos[1]})
			continue
		}

		agents = append(agents, plotter.XY{X: pos[0], Y: pos[1]})
		estimates = append(estimates, plotter.XY{X: est[i][0], Y: est[i][1]})

		seg, err := plotter.NewLine(plotter.XYs{
			{X: pos[0], Y: pos[1]},
			{X: est[i][0], Y: est[i][1]},
		})
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		seg.Color = segmentColor
		p.Add(seg)
	}

	for _, layer := range []struct {
		xys   plotter.XYs
		color color.Color
	}{
		{anchors, anchorColor},
		{agents, agentColor},
		{estimates, estimateColor},
	} {
		if len(layer.xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(layer.xys)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		sc.GlyphStyle.Color = layer.color
		sc.GlyphStyle.Radius = pointRadius
		p.Add(sc)
	}

	if err := p.Save(imageSize, imageSize, path); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Frames renders one image per estimate snapshot into dir, named
// frame000.png, frame001.png, ... in snapshot order, and returns the
// written paths.
func Frames(truths []point.Truth, frames []solver.Estimate, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	paths := make([]string, 0, len(frames))
	for i, est := range frames {
		path := filepath.Join(dir, fmt.Sprintf("frame%03d.png", i))
		if err := Image(truths, est, path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
