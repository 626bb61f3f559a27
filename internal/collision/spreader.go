// Package collision provides the default overlap resolver for marker-plane zones.
//
// Spreader keeps the relative order of markers along an edge and pushes
// overlapping neighbours apart just far enough to touch. Inputs that are already
// free of overlaps come back unchanged.
package collision

import (
	"slices"
	"sort"

	"github.com/OCAP2/arlayout/internal/layout"
	"seehuhn.de/go/geom/rect"
)

// Spreader implements layout.Resolver.
type Spreader struct{}

var _ layout.Resolver = Spreader{}

// Resolve1D separates intervals along an edge.
//
// Intervals are swept in order of their centres, each pushed past its predecessor.
// The lowest interval is first lifted into span. If the sweep runs off the end
// of span it is repeated backwards from the end. Only when the intervals are
// wider in total than span are their centres spaced evenly across it, leaving
// overlap in place.
func (Spreader) Resolve1D(in []layout.Interval, span layout.Interval) []layout.Interval {
	out := make([]layout.Interval, len(in))
	copy(out, in)
	if len(out) < 2 {
		return out
	}

	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return center(out[order[a]]) < center(out[order[b]])
	})

	if !overlapping1D(out) {
		return out
	}

	var total float64
	for _, iv := range out {
		total += iv.Hi - iv.Lo
	}
	if total > span.Hi-span.Lo {
		step := (span.Hi - span.Lo) / float64(len(order))
		for k, i := range order {
			c := span.Lo + (float64(k)+0.5)*step
			shift1D(&out[i], c-center(out[i]))
		}
		return out
	}

	if first := &out[order[0]]; first.Lo < span.Lo {
		shift1D(first, span.Lo-first.Lo)
	}
	reach := out[order[0]].Hi
	for _, i := range order[1:] {
		if cur := &out[i]; cur.Lo < reach {
			shift1D(cur, reach-cur.Lo)
		}
		reach = max(reach, out[i].Hi)
	}

	if last := &out[order[len(order)-1]]; last.Hi > span.Hi {
		shift1D(last, span.Hi-last.Hi)
		floor := last.Lo
		for k := len(order) - 2; k >= 0; k-- {
			if cur := &out[order[k]]; cur.Hi > floor {
				shift1D(cur, floor-cur.Hi)
			}
			floor = min(floor, out[order[k]].Lo)
		}
	}
	return out
}

// Resolve2D separates label boxes by pushing later boxes upward past the ones
// already placed. Boxes are placed bottom to top. A box pushed past the top of
// bounds is moved back down to it, and a second pass from the top pushes the
// boxes beneath it further down.
func (Spreader) Resolve2D(in []rect.Rect, bounds rect.Rect) []rect.Rect {
	out := make([]rect.Rect, len(in))
	copy(out, in)
	if len(out) < 2 {
		return out
	}

	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return out[order[a]].LLy < out[order[b]].LLy
	})

	moved := make([]bool, len(out))
	placed := make([]int, 0, len(out))
	for _, i := range order {
		for again := true; again; {
			again = false
			for _, j := range placed {
				if overlaps2D(out[i], out[j]) {
					shift2D(&out[i], out[j].URy-out[i].LLy)
					moved[i] = true
					again = true
				}
			}
		}
		placed = append(placed, i)
	}

	clamped := false
	for i := range out {
		if moved[i] && out[i].URy > bounds.URy {
			shift2D(&out[i], bounds.URy-out[i].URy)
			clamped = true
		}
	}
	if !clamped {
		return out
	}

	slices.Reverse(order)
	sort.SliceStable(order, func(a, b int) bool {
		return out[order[a]].URy > out[order[b]].URy
	})
	placed = placed[:0]
	for _, i := range order {
		for again := true; again; {
			again = false
			for _, j := range placed {
				if overlaps2D(out[i], out[j]) {
					shift2D(&out[i], out[j].LLy-out[i].URy)
					again = true
				}
			}
		}
		placed = append(placed, i)
	}
	return out
}

func overlapping1D(ivs []layout.Interval) bool {
	for i := range ivs {
		for j := i + 1; j < len(ivs); j++ {
			if ivs[i].Overlaps(ivs[j]) {
				return true
			}
		}
	}
	return false
}

func overlaps2D(a, b rect.Rect) bool {
	return a.LLx < b.URx && b.LLx < a.URx && a.LLy < b.URy && b.LLy < a.URy
}

func center(iv layout.Interval) float64 {
	return (iv.Lo + iv.Hi) / 2
}

func shift1D(iv *layout.Interval, d float64) {
	iv.Lo += d
	iv.Hi += d
}

func shift2D(r *rect.Rect, d float64) {
	r.LLy += d
	r.URy += d
}
