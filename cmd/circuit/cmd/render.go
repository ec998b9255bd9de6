package cmd

import (
	"fmt"
	"math"

	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/engine"
	"github.com/fogleman/gg"
)

const (
	renderScale  = 2.0
	renderMargin = 40.0
)

// renderPNG draws the traced path: highlight rectangles first, then the
// waypoint polyline, then the waypoints themselves with the start marked
// green and the end red.
func renderPNG(path *engine.AnimationPath, out string) error {
	if len(path.Waypoints) == 0 {
		return fmt.Errorf("path has no waypoints")
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(p engine.Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range path.Waypoints {
		extend(p)
	}
	for _, r := range path.Highlights {
		extend(r.Min)
		extend(r.Max)
	}

	w := int((maxX-minX)*renderScale + 2*renderMargin)
	h := int((maxY-minY)*renderScale + 2*renderMargin)
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	toX := func(x float64) float64 { return (x-minX)*renderScale + renderMargin }
	toY := func(y float64) float64 { return (y-minY)*renderScale + renderMargin }

	dc.SetRGBA(0.35, 0.6, 0.95, 0.35)
	for _, r := range path.Highlights {
		dc.DrawRectangle(toX(r.Min.X), toY(r.Min.Y), (r.Max.X-r.Min.X)*renderScale, (r.Max.Y-r.Min.Y)*renderScale)
		dc.Fill()
	}

	dc.SetRGB(0.95, 0.65, 0.1)
	dc.SetLineWidth(2)
	for i := 1; i < len(path.Waypoints); i++ {
		a, b := path.Waypoints[i-1], path.Waypoints[i]
		dc.DrawLine(toX(a.X), toY(a.Y), toX(b.X), toY(b.Y))
		dc.Stroke()
	}

	for i, p := range path.Waypoints {
		switch {
		case i == 0:
			dc.SetRGB(0.1, 0.7, 0.2)
		case i == len(path.Waypoints)-1 && path.IsComplete:
			dc.SetRGB(0.85, 0.15, 0.15)
		default:
			dc.SetRGB(0.3, 0.3, 0.3)
		}
		dc.DrawCircle(toX(p.X), toY(p.Y), 4)
		dc.Fill()
	}

	return dc.SavePNG(out)
}
