// Package geo converts geographic positions into the local metric frame the layout engine works in.
//
// Positions are projected to EPSG:3857 and differences are scaled back to ground metres with the
// Mercator scale factor at the origin latitude. This is accurate to well under a percent for the
// distances AR indicators are shown at.
package geo

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/OCAP2/arlayout/pkg/core"
	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/wroge/wgs84"
)

// ErrInvalidCoordinates is returned when the coordinates are invalid
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

var to3857 = wgs84.EPSG().Transform(4326, 3857)

// ParsePosition parses a "long,lat" or "long,lat,elev" string into a core.GeoPosition.
func ParsePosition(coords string) (core.GeoPosition, error) {
	coordsSplit := strings.Split(coords, ",")
	if len(coordsSplit) < 2 {
		return core.GeoPosition{}, ErrInvalidCoordinates
	}
	long, err := strconv.ParseFloat(strings.TrimSpace(coordsSplit[0]), 64)
	if err != nil {
		return core.GeoPosition{}, ErrInvalidCoordinates
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(coordsSplit[1]), 64)
	if err != nil {
		return core.GeoPosition{}, ErrInvalidCoordinates
	}
	var elev float64
	if len(coordsSplit) > 2 {
		elev, err = strconv.ParseFloat(strings.TrimSpace(coordsSplit[2]), 64)
		if err != nil {
			return core.GeoPosition{}, ErrInvalidCoordinates
		}
	}
	if lat < -90 || lat > 90 || long < -180 || long > 180 {
		return core.GeoPosition{}, ErrInvalidCoordinates
	}
	return core.GeoPosition{Lon: long, Lat: lat, Alt: elev}, nil
}

// Point3857 projects a position to web mercator, keeping the elevation as Z.
func Point3857(pos core.GeoPosition) geom.Point {
	x, y, _ := to3857(pos.Lon, pos.Lat, 0)
	return geom.NewPoint(
		geom.Coordinates{
			XY:   geom.XY{X: x, Y: y},
			Z:    pos.Alt,
			Type: geom.DimXYZ,
		},
	)
}

// Offset returns the east and north ground distance in metres from one position to another.
func Offset(from, to core.GeoPosition) (east, north float64) {
	a, okA := Point3857(from).Coordinates()
	b, okB := Point3857(to).Coordinates()
	if !okA || !okB {
		return 0, 0
	}
	k := math.Cos(from.Lat * math.Pi / 180)
	return (b.X - a.X) * k, (b.Y - a.Y) * k
}

// Distance returns the horizontal ground distance in metres between two positions.
func Distance(from, to core.GeoPosition) float64 {
	east, north := Offset(from, to)
	return math.Hypot(east, north)
}

// Azimuth returns the direction from one position to another in radians,
// clockwise from north, in (-π, π].
func Azimuth(from, to core.GeoPosition) float64 {
	east, north := Offset(from, to)
	if east == 0 && north == 0 {
		return 0
	}
	return NormalizeAngle(math.Atan2(east, north))
}

// RelativeBearing returns the bearing of a target relative to the user's heading, in (-π, π].
func RelativeBearing(user core.UserPose, target core.GeoPosition) float64 {
	return NormalizeAngle(Azimuth(user.Position, target) - user.Heading)
}

// NormalizeAngle wraps an angle into (-π, π].
func NormalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
