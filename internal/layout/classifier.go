package layout

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Classifier buckets raw positions by the edge they sit on.
//
// Edges are matched with exact float comparison. The projector clamps out-of-view
// markers to the boundary values themselves, so markers on an edge compare equal;
// anything else falls through to the in-view bucket.
type Classifier struct {
	Boundary         Boundary
	MarkerHalfWidth  float64
	MarkerHalfHeight float64
	LabelHalfHeight  float64
}

// NewClassifier creates a Classifier from a layout config.
func NewClassifier(cfg Config) Classifier {
	mhw, mhh := cfg.Extents()
	return Classifier{
		Boundary:         cfg.Boundary,
		MarkerHalfWidth:  mhw,
		MarkerHalfHeight: mhh,
		LabelHalfHeight:  cfg.LabelHalfHeight,
	}
}

// Classify assigns p to a zone and appends its collision extent to the matching bucket.
func (c Classifier) Classify(b *Buckets, p vec.Vec2) Assignment {
	hw, hh := c.Boundary.HalfWidth, c.Boundary.HalfHeight

	switch {
	case math.Abs(p.X) == hw && math.Abs(p.Y) == hh:
		return AtCorner{}
	case p.X == -hw:
		return c.appendEdge(b, ZoneLeft, Interval{Lo: p.Y - c.MarkerHalfHeight, Hi: p.Y + c.MarkerHalfHeight})
	case p.X == hw:
		return c.appendEdge(b, ZoneRight, Interval{Lo: p.Y - c.MarkerHalfHeight, Hi: p.Y + c.MarkerHalfHeight})
	case p.Y == -hh:
		return c.appendEdge(b, ZoneBottom, Interval{Lo: p.X - c.MarkerHalfWidth, Hi: p.X + c.MarkerHalfWidth})
	case p.Y == hh:
		return c.appendEdge(b, ZoneTop, Interval{Lo: p.X - c.MarkerHalfWidth, Hi: p.X + c.MarkerHalfWidth})
	}

	b.Boxes = append(b.Boxes, rect.Rect{
		LLx: p.X - c.MarkerHalfWidth,
		URx: p.X + c.MarkerHalfWidth,
		LLy: p.Y - c.LabelHalfHeight,
		URy: p.Y + c.LabelHalfHeight,
	})
	return InViewSlot{Index: len(b.Boxes) - 1}
}

func (c Classifier) appendEdge(b *Buckets, edge Zone, iv Interval) Assignment {
	b.Edges[edge] = append(b.Edges[edge], iv)
	return OnEdge{Edge: edge, Index: len(b.Edges[edge]) - 1}
}
