// Package marker provides GeoMarker, a core.Marker anchored at a geographic place.
package marker

import (
	"math"

	"github.com/OCAP2/arlayout/internal/geo"
	"github.com/OCAP2/arlayout/pkg/core"
	"seehuhn.de/go/geom/vec"
)

// TextElement is a label-like sub-element that only tracks its local vertical offset.
type TextElement struct {
	Text string
	y    float64
}

func (e *TextElement) SetLocalY(y float64) { e.y = y }
func (e *TextElement) LocalY() float64     { return e.y }

// GeoMarker is a marker for a place on the ground. Its screen-space coordinate is a
// pinhole projection onto a plane PlaneDistance in front of the camera.
type GeoMarker struct {
	place         core.Place
	planeDistance float64

	position    vec.Vec2
	orientation float64
	distance    float64
	inView      bool
	visible     bool

	label        *TextElement
	distanceText *TextElement
}

var _ core.Marker = (*GeoMarker)(nil)

// New creates a visible marker for place. The label shows the place name.
func New(place core.Place, planeDistance float64) *GeoMarker {
	return &GeoMarker{
		place:         place,
		planeDistance: math.Abs(planeDistance),
		visible:       true,
		label:         &TextElement{Text: place.Name},
		distanceText:  &TextElement{},
	}
}

func (m *GeoMarker) ID() string        { return m.place.ID }
func (m *GeoMarker) Place() core.Place { return m.place }

func (m *GeoMarker) PhysicalDistance(user core.UserPose) float64 {
	return geo.Distance(user.Position, m.place.Position)
}

func (m *GeoMarker) Bearing(user core.UserPose) float64 {
	return geo.RelativeBearing(user, m.place.Position)
}

// ScreenSpaceCoordinate projects the place onto the marker-plane. Targets behind the user
// are mirrored through the camera so they keep their side. It reports false for targets
// exactly abeam or at the user's position.
func (m *GeoMarker) ScreenSpaceCoordinate(user core.UserPose, _ core.Camera, verticalOffset float64) (vec.Vec2, bool) {
	east, north := geo.Offset(user.Position, m.place.Position)
	ground := math.Hypot(east, north)
	if ground == 0 {
		return vec.Vec2{}, false
	}
	b := m.Bearing(user)
	forward := math.Abs(math.Cos(b)) * ground
	if forward < 1e-9 {
		return vec.Vec2{}, false
	}
	side := math.Sin(b) * ground
	rise := m.place.Position.Alt - user.Position.Alt
	return vec.Vec2{
		X: m.planeDistance * side / forward,
		Y: verticalOffset + m.planeDistance*rise/forward,
	}, true
}

func (m *GeoMarker) SetOrientation(rad float64)  { m.orientation = rad }
func (m *GeoMarker) SetDistance(d float64)       { m.distance = d }
func (m *GeoMarker) SetInView(inView bool)       { m.inView = inView }
func (m *GeoMarker) SetLocalPosition(p vec.Vec2) { m.position = p }
func (m *GeoMarker) SetVisible(visible bool)     { m.visible = visible }

func (m *GeoMarker) Orientation() float64    { return m.orientation }
func (m *GeoMarker) Distance() float64       { return m.distance }
func (m *GeoMarker) InView() bool            { return m.inView }
func (m *GeoMarker) LocalPosition() vec.Vec2 { return m.position }
func (m *GeoMarker) Visible() bool           { return m.visible }

func (m *GeoMarker) Label() core.Element        { return m.label }
func (m *GeoMarker) DistanceText() core.Element { return m.distanceText }
