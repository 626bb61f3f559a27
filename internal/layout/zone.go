package layout

import "seehuhn.de/go/geom/rect"

// Zone classifies where a marker sits on the marker-plane in one frame.
type Zone int

const (
	ZoneTop Zone = iota
	ZoneRight
	ZoneBottom
	ZoneLeft
	ZoneCorner
	ZoneInView
)

const edgeCount = 4

func (z Zone) String() string {
	switch z {
	case ZoneTop:
		return "top"
	case ZoneRight:
		return "right"
	case ZoneBottom:
		return "bottom"
	case ZoneLeft:
		return "left"
	case ZoneCorner:
		return "corner"
	case ZoneInView:
		return "in-view"
	default:
		return "unknown"
	}
}

// MarshalText lets zones appear by name in JSON output.
func (z Zone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// Interval is a closed 1D span along an edge.
// For vertical edges it spans y, for horizontal edges it spans x.
type Interval struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Overlaps reports whether two intervals share more than an endpoint.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Lo < o.Hi && o.Lo < iv.Hi
}

// Assignment records which bucket a marker was placed in for the current frame.
// It is one of OnEdge, AtCorner or InViewSlot.
type Assignment interface {
	Zone() Zone
	isAssignment()
}

// OnEdge places a marker in one of the four edge buckets.
type OnEdge struct {
	Edge  Zone
	Index int
}

// AtCorner marks a marker that touches both extents. It is in no bucket.
type AtCorner struct{}

// InViewSlot places a marker's label box in the in-view bucket.
type InViewSlot struct {
	Index int
}

func (a OnEdge) Zone() Zone  { return a.Edge }
func (OnEdge) isAssignment() {}

func (AtCorner) Zone() Zone    { return ZoneCorner }
func (AtCorner) isAssignment() {}

func (InViewSlot) Zone() Zone    { return ZoneInView }
func (InViewSlot) isAssignment() {}

// Buckets holds the frame-local collision input for every zone.
// A zero Buckets is ready to use; create a new one per frame.
type Buckets struct {
	Edges [edgeCount][]Interval
	Boxes []rect.Rect
}

// Len returns the number of entries across all buckets.
func (b *Buckets) Len() int {
	n := len(b.Boxes)
	for _, e := range b.Edges {
		n += len(e)
	}
	return n
}
