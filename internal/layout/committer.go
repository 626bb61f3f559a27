package layout

import "seehuhn.de/go/geom/vec"

// Placement is the committed layout of one marker for one frame.
type Placement struct {
	Final     vec.Vec2
	LabelY    float64
	DistanceY float64
}

// Committer turns resolver output back into marker and label positions.
type Committer struct {
	Boundary         Boundary
	MarkerHalfWidth  float64
	MarkerHalfHeight float64
	LabelHalfHeight  float64
	DefaultLabelY    float64
}

// NewCommitter creates a Committer from a layout config.
func NewCommitter(cfg Config) Committer {
	mhw, mhh := cfg.Extents()
	return Committer{
		Boundary:         cfg.Boundary,
		MarkerHalfWidth:  mhw,
		MarkerHalfHeight: mhh,
		LabelHalfHeight:  cfg.LabelHalfHeight,
		DefaultLabelY:    cfg.DefaultLabelY,
	}
}

// Commit computes the final placement of a marker from its raw position and its
// zone assignment. An index the resolver did not return leaves the raw position.
func (c Committer) Commit(a Assignment, raw vec.Vec2, res *Resolved) Placement {
	pl := Placement{Final: raw, LabelY: c.DefaultLabelY}

	switch a := a.(type) {
	case AtCorner:
		pl.DistanceY = -pl.LabelY
		return pl
	case OnEdge:
		ivs := res.Edges[a.Edge]
		if a.Index < len(ivs) {
			switch a.Edge {
			case ZoneLeft, ZoneRight:
				pl.Final.Y = ivs[a.Index].Hi - c.MarkerHalfHeight
			case ZoneTop, ZoneBottom:
				pl.Final.X = ivs[a.Index].Hi - c.MarkerHalfWidth
			}
		}
	case InViewSlot:
		if a.Index < len(res.Boxes) {
			pl.LabelY = res.Boxes[a.Index].URy - c.LabelHalfHeight + c.DefaultLabelY - raw.Y
		}
	}

	pl.Final.X = clamp(pl.Final.X, -c.Boundary.HalfWidth, c.Boundary.HalfWidth)
	pl.Final.Y = clamp(pl.Final.Y, -c.Boundary.HalfHeight, c.Boundary.HalfHeight)
	pl.DistanceY = -pl.LabelY
	return pl
}
