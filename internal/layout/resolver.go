package layout

import "seehuhn.de/go/geom/rect"

// Resolver removes overlaps within one zone.
//
// Implementations must return a slice of the same length as the input where
// element i is the resolved position of input element i. Outputs should not
// overlap when the zone has room for all of them; what happens when it does not
// is up to the implementation.
type Resolver interface {
	// Resolve1D spreads intervals along an edge whose usable extent is span.
	Resolve1D(intervals []Interval, span Interval) []Interval
	// Resolve2D separates in-view label boxes inside bounds.
	Resolve2D(boxes []rect.Rect, bounds rect.Rect) []rect.Rect
}

// Resolved is the resolver output for every bucket of one frame.
type Resolved struct {
	Edges [edgeCount][]Interval
	Boxes []rect.Rect
}

// Resolve calls r once per non-empty bucket.
func (b *Buckets) Resolve(r Resolver, bound Boundary) Resolved {
	var out Resolved
	for edge, ivs := range b.Edges {
		if len(ivs) == 0 {
			continue
		}
		span := Interval{Lo: -bound.HalfHeight, Hi: bound.HalfHeight}
		if Zone(edge) == ZoneTop || Zone(edge) == ZoneBottom {
			span = Interval{Lo: -bound.HalfWidth, Hi: bound.HalfWidth}
		}
		out.Edges[edge] = r.Resolve1D(ivs, span)
	}
	if len(b.Boxes) > 0 {
		out.Boxes = r.Resolve2D(b.Boxes, rect.Rect{
			LLx: -bound.HalfWidth, LLy: -bound.HalfHeight,
			URx: bound.HalfWidth, URy: bound.HalfHeight,
		})
	}
	return out
}
