package leveldata

import (
	"math"

	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
)

// LayoutOptions controls how a footprint is split into walls and beams.
type LayoutOptions struct {
	WallThickness float64
	SegmentLength float64
	BeamSize      float64
	BeamSpacing   float64
}

// Layout is the set of wall segments and beams making up one building.
type Layout struct {
	Walls []gamemath.Rect
	Beams []gamemath.Rect
}

type span struct {
	from, to float64
}

// LayoutBuilding splits a footprint into perimeter wall segments and support beams.
// Corner beams are square; edge beams sit flush with the outer edge.
func LayoutBuilding(fp BuildingFootprint, opts LayoutOptions) Layout {
	t := math.Min(opts.WallThickness, math.Min(fp.W, fp.H)/2)
	if t <= 0 {
		return Layout{}
	}

	corner := t
	if fp.Beams != BeamsNone {
		corner = math.Max(t, math.Min(opts.BeamSize, math.Min(fp.W, fp.H)/2))
	}

	var out Layout
	if fp.Beams != BeamsNone {
		out.Beams = append(out.Beams,
			gamemath.Rect{X: fp.X, Y: fp.Y, W: corner, H: corner},
			gamemath.Rect{X: fp.X + fp.W - corner, Y: fp.Y, W: corner, H: corner},
			gamemath.Rect{X: fp.X, Y: fp.Y + fp.H - corner, W: corner, H: corner},
			gamemath.Rect{X: fp.X + fp.W - corner, Y: fp.Y + fp.H - corner, W: corner, H: corner},
		)
	}

	edgeBeams := fp.Beams == BeamsEdges && opts.BeamSpacing > 0

	// Horizontal edges run between the corners; vertical edges likewise.
	hFrom, hTo := fp.X+corner, fp.X+fp.W-corner
	vFrom, vTo := fp.Y+corner, fp.Y+fp.H-corner
	if fp.Beams == BeamsNone {
		hFrom, hTo = fp.X, fp.X+fp.W
	}

	hWalls, hBeams := edgeSpans(hFrom, hTo, corner, opts, edgeBeams)
	vWalls, vBeams := edgeSpans(vFrom, vTo, corner, opts, edgeBeams)

	top, bottom := fp.Y, fp.Y+fp.H-t
	left, right := fp.X, fp.X+fp.W-t

	for _, s := range hWalls {
		out.Walls = append(out.Walls,
			gamemath.Rect{X: s.from, Y: top, W: s.to - s.from, H: t},
			gamemath.Rect{X: s.from, Y: bottom, W: s.to - s.from, H: t},
		)
	}
	for _, s := range vWalls {
		out.Walls = append(out.Walls,
			gamemath.Rect{X: left, Y: s.from, W: t, H: s.to - s.from},
			gamemath.Rect{X: right, Y: s.from, W: t, H: s.to - s.from},
		)
	}
	for _, p := range hBeams {
		out.Beams = append(out.Beams,
			gamemath.Rect{X: p, Y: fp.Y, W: corner, H: corner},
			gamemath.Rect{X: p, Y: fp.Y + fp.H - corner, W: corner, H: corner},
		)
	}
	for _, p := range vBeams {
		out.Beams = append(out.Beams,
			gamemath.Rect{X: fp.X, Y: p, W: corner, H: corner},
			gamemath.Rect{X: fp.X + fp.W - corner, Y: p, W: corner, H: corner},
		)
	}

	return out
}

// edgeSpans returns wall spans along [from, to] and the start offsets of edge beams.
func edgeSpans(from, to, beamSize float64, opts LayoutOptions, withBeams bool) ([]span, []float64) {
	if to <= from {
		return nil, nil
	}

	var beams []float64
	gaps := []span{{from, to}}
	if withBeams {
		gaps = gaps[:0]
		cursor := from
		for p := from + opts.BeamSpacing - beamSize/2; p+beamSize <= to-opts.BeamSpacing/2; p += opts.BeamSpacing {
			gaps = append(gaps, span{cursor, p})
			beams = append(beams, p)
			cursor = p + beamSize
		}
		gaps = append(gaps, span{cursor, to})
	}

	var walls []span
	for _, g := range gaps {
		walls = append(walls, splitSpan(g, opts.SegmentLength)...)
	}
	return walls, beams
}

// splitSpan cuts s into roughly equal pieces no longer than seg.
func splitSpan(s span, seg float64) []span {
	length := s.to - s.from
	if length <= 0 {
		return nil
	}
	n := 1
	if seg > 0 {
		n = int(math.Ceil(length / seg))
	}
	step := length / float64(n)
	out := make([]span, 0, n)
	for i := 0; i < n; i++ {
		end := s.from + step*float64(i+1)
		if i == n-1 {
			end = s.to
		}
		out = append(out, span{s.from + step*float64(i), end})
	}
	return out
}
