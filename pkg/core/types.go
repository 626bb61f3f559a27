// Package core defines the types shared by the layout engine and the host application:
// geographic positions, places, the user pose and the collaborator interfaces the engine consumes.
package core

// GeoPosition is a WGS 84 position.
type GeoPosition struct {
	Lon float64 `json:"lon" mapstructure:"lon"`
	Lat float64 `json:"lat" mapstructure:"lat"`
	Alt float64 `json:"alt" mapstructure:"alt"` // elevation ASL in metres
}

// UserPose is where the user stands and which way they face.
// Heading is the azimuth of the user's forward direction in radians, clockwise from north.
type UserPose struct {
	Position GeoPosition
	Heading  float64
}

// Place is a named geographic destination a marker can be associated with.
type Place struct {
	ID       string      `json:"id" mapstructure:"id"`
	Name     string      `json:"name" mapstructure:"name"`
	Position GeoPosition `json:"position" mapstructure:"position"`
}
