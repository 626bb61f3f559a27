package main

import (
	"math"

	"github.com/OCAP2/arlayout/pkg/core"
	"github.com/google/uuid"
)

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// sceneCamera is a fixed camera described by the scene config.
type sceneCamera struct {
	fov   float64
	pitch float64
}

func (c *sceneCamera) Ready() bool          { return true }
func (c *sceneCamera) FieldOfView() float64 { return c.fov }
func (c *sceneCamera) Pitch() float64       { return c.pitch }

// sceneUser stands still and turns by a fixed step every frame.
type sceneUser struct {
	pose core.UserPose
}

func (u *sceneUser) Pose() (core.UserPose, bool) { return u.pose, true }

func (u *sceneUser) turn(rad float64) {
	u.pose.Heading = math.Mod(u.pose.Heading+rad, 2*math.Pi)
}

// sign is a world-anchored label that follows a marker.
type sign struct {
	ID       string  `json:"id"`
	Bearing  float64 `json:"bearing"`
	Distance float64 `json:"distance"`
	Facing   float64 `json:"facing"`
	Text     string  `json:"text"`
}

func (s *sign) MarkerID() string { return s.ID }
func (s *sign) SetPlacement(bearing, distance float64) {
	s.Bearing, s.Distance = bearing, distance
}
func (s *sign) SetFacing(rad float64) { s.Facing = rad }
func (s *sign) SetText(text string)   { s.Text = text }

type signFactory struct{}

func (signFactory) Create(m core.Marker, _ core.Place, _ core.UserPose) (core.Auxiliary, error) {
	return &sign{ID: m.ID()}, nil
}

func (signFactory) Destroy(core.Auxiliary) {}

// withIDs gives every place without an ID a random one.
func withIDs(places []core.Place) []core.Place {
	out := make([]core.Place, len(places))
	for i, p := range places {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		out[i] = p
	}
	return out
}
