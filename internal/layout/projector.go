package layout

import (
	"math"

	"github.com/OCAP2/arlayout/pkg/core"
	"seehuhn.de/go/geom/vec"
)

// Projection is a marker's raw placement on the marker-plane for one frame.
type Projection struct {
	Distance    float64
	Bearing     float64
	Raw         vec.Vec2
	Orientation float64
	InView      bool
	OnBack      bool
}

// Projector maps bearings onto the marker-plane.
type Projector struct {
	Boundary         Boundary
	ImageAngleOffset float64
	BackBlendWidth   float64
}

// NewProjector creates a Projector from a layout config.
func NewProjector(cfg Config) Projector {
	return Projector{
		Boundary:         cfg.Boundary,
		ImageAngleOffset: cfg.ImageAngleOffset,
		BackBlendWidth:   cfg.BackBlendWidth,
	}
}

// VerticalOffset is the shift of the horizon on the marker-plane caused by camera pitch.
func VerticalOffset(planeDistance, pitch float64) float64 {
	return finite(-math.Abs(planeDistance) * math.Tan(pitch))
}

// Project queries the marker for its distance, bearing and, when needed, its
// direct screen-space coordinate, and places it on the marker-plane.
func (p Projector) Project(m core.Marker, user core.UserPose, cam core.Camera, halfFOV, verticalOffset float64) Projection {
	bearing := finite(m.Bearing(user))
	pr := p.Place(bearing, halfFOV, verticalOffset, func() (vec.Vec2, bool) {
		return m.ScreenSpaceCoordinate(user, cam, verticalOffset)
	})
	pr.Distance = finite(m.PhysicalDistance(user))
	return pr
}

// Place computes the raw position, in-view flag and glyph orientation for a bearing.
// direct is only consulted for in-view and back-facing bearings.
func (p Projector) Place(bearing, halfFOV, verticalOffset float64, direct func() (vec.Vec2, bool)) Projection {
	hw, hh := p.Boundary.HalfWidth, p.Boundary.HalfHeight
	bearing = finite(bearing)
	abs := math.Abs(bearing)

	pr := Projection{
		Bearing: bearing,
		InView:  abs < halfFOV,
		OnBack:  abs > math.Pi-halfFOV,
	}

	if pr.InView || pr.OnBack {
		if pos, ok := direct(); ok {
			pr.Raw = vec.Vec2{X: finite(pos.X), Y: finite(pos.Y)}
		}
	} else {
		pr.Raw = AngleToBoundary(bearing, halfFOV, p.Boundary)
		pr.Raw.Y += verticalOffset
	}

	pr.Orientation = -(bearing + p.ImageAngleOffset)
	if pr.InView {
		if math.Abs(pr.Raw.Y) <= hh {
			pr.Orientation = 0
		} else {
			pr.InView = false
			if verticalOffset < -hh {
				pr.Orientation = 2*math.Pi - pr.Orientation
			}
		}
	}

	if !pr.InView {
		pr.Raw.X = clamp(pr.Raw.X, -hw, hw)
		pr.Raw.Y = clamp(pr.Raw.Y, -hh, hh)
		t := p.backBlend(abs)
		pr.Raw.Y = pr.Raw.Y*(1-t) + (-hh)*t
	}
	return pr
}

// backBlend ramps from 0 to 1 over the last BackBlendWidth radians before π.
func (p Projector) backBlend(absBearing float64) float64 {
	if absBearing >= math.Pi {
		return 1
	}
	if p.BackBlendWidth <= 0 {
		return 0
	}
	return clamp((absBearing-(math.Pi-p.BackBlendWidth))/p.BackBlendWidth, 0, 1)
}

// AngleToBoundary maps a bearing onto the perimeter of the projection rectangle
// (ProjectionHalfWidth × HalfHeight). The perimeter is split into four linear segments
// parameterised in degrees; neighbouring segments meet exactly at their shared angles.
func AngleToBoundary(bearing, halfFOV float64, b Boundary) vec.Vec2 {
	deg := bearing * 180 / math.Pi
	h := halfFOV * 180 / math.Pi

	switch {
	case deg >= -h && deg <= h:
		return topSegment(deg, h, b)
	case deg > h && deg <= 180-h:
		return rightSegment(deg, h, b)
	case deg >= -180+h && deg < -h:
		return leftSegment(deg, h, b)
	default:
		return bottomSegment(deg, h, b)
	}
}

func topSegment(deg, h float64, b Boundary) vec.Vec2 {
	return vec.Vec2{X: remap(deg, -h, h, -b.ProjectionHalfWidth, b.ProjectionHalfWidth), Y: b.HalfHeight}
}

func rightSegment(deg, h float64, b Boundary) vec.Vec2 {
	return vec.Vec2{X: b.ProjectionHalfWidth, Y: remap(deg, h, 180-h, b.HalfHeight, -b.HalfHeight)}
}

func leftSegment(deg, h float64, b Boundary) vec.Vec2 {
	return vec.Vec2{X: -b.ProjectionHalfWidth, Y: remap(deg, -h, -180+h, b.HalfHeight, -b.HalfHeight)}
}

func bottomSegment(deg, h float64, b Boundary) vec.Vec2 {
	if deg >= 0 {
		return vec.Vec2{X: remap(deg, 180-h, 180, b.ProjectionHalfWidth, 0), Y: -b.HalfHeight}
	}
	return vec.Vec2{X: remap(deg, -180+h, -180, -b.ProjectionHalfWidth, 0), Y: -b.HalfHeight}
}

// remap linearly maps v from [a, b] to [c, d]. The endpoints map exactly.
func remap(v, a, b, c, d float64) float64 {
	if a == b {
		return c
	}
	t := (v - a) / (b - a)
	return c*(1-t) + d*t
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
