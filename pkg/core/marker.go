package core

import "seehuhn.de/go/geom/vec"

// Camera exposes the state of the host camera the marker-plane is attached to.
type Camera interface {
	// Ready reports whether the camera has been initialised. Frames are skipped until it is.
	Ready() bool
	// FieldOfView is the full horizontal field of view in radians.
	FieldOfView() float64
	// Pitch is the camera pitch in radians, positive when looking up.
	Pitch() float64
}

// Geolocation provides the user's pose when a fix is available.
type Geolocation interface {
	Pose() (UserPose, bool)
}

// Element is a text sub-element of a marker (label or distance text).
type Element interface {
	SetLocalY(y float64)
	LocalY() float64
}

// Marker is an indicator on the marker-plane.
//
// Distance, Bearing and ScreenSpaceCoordinate may return NaN or report
// ok=false when the marker cannot be located; the engine treats such values as zero.
type Marker interface {
	ID() string

	PhysicalDistance(user UserPose) float64
	// Bearing relative to the user's forward direction, in (-π, π].
	Bearing(user UserPose) float64
	ScreenSpaceCoordinate(user UserPose, cam Camera, verticalOffset float64) (vec.Vec2, bool)

	SetOrientation(rad float64)
	SetDistance(d float64)
	SetInView(inView bool)
	SetLocalPosition(p vec.Vec2)
	SetVisible(visible bool)

	Label() Element
	DistanceText() Element
}

// Auxiliary is a world-anchored object that tracks a marker, e.g. a floating
// sign placed at the marker's bearing and distance.
type Auxiliary interface {
	MarkerID() string
	SetPlacement(bearing, distance float64)
	SetFacing(rad float64)
	SetText(text string)
}

// AuxiliaryFactory creates and destroys auxiliary objects on behalf of the engine.
type AuxiliaryFactory interface {
	Create(m Marker, place Place, user UserPose) (Auxiliary, error)
	Destroy(a Auxiliary)
}
