package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a layout configuration cannot produce a usable marker-plane.
var ErrInvalidConfig = errors.New("invalid layout config")

// Boundary is the usable extent of the marker-plane, centred on the origin.
// ProjectionHalfWidth is only used by the angular mapping of out-of-view markers and
// is expected to be at least HalfWidth so side markers clamp onto the vertical edges.
type Boundary struct {
	HalfWidth           float64 `json:"halfWidth" mapstructure:"halfWidth"`
	HalfHeight          float64 `json:"halfHeight" mapstructure:"halfHeight"`
	ProjectionHalfWidth float64 `json:"projectionHalfWidth" mapstructure:"projectionHalfWidth"`
}

// Config holds the recognised layout options.
type Config struct {
	MarkerScale         float64  `json:"markerScale" mapstructure:"markerScale"`
	ImageAngleOffset    float64  `json:"imageAngleOffset" mapstructure:"imageAngleOffset"` // radians
	MarkerHalfWidth     float64  `json:"markerHalfWidth" mapstructure:"markerHalfWidth"`
	MarkerHalfHeight    float64  `json:"markerHalfHeight" mapstructure:"markerHalfHeight"`
	LabelHalfHeight     float64  `json:"labelHalfHeight" mapstructure:"labelHalfHeight"`
	DefaultLabelY       float64  `json:"defaultLabelY" mapstructure:"defaultLabelY"`
	DisplayOnlySelected bool     `json:"displayOnlySelected" mapstructure:"displayOnlySelected"`
	Boundary            Boundary `json:"boundary" mapstructure:"boundary"`

	// PlaneDistance is the distance of the marker-plane from the camera.
	PlaneDistance float64 `json:"planeDistance" mapstructure:"planeDistance"`
	// FOVBuffer is subtracted from half the camera field of view (radians).
	FOVBuffer float64 `json:"fovBuffer" mapstructure:"fovBuffer"`
	// BackBlendWidth is the angular width (radians) over which markers behind the
	// user sweep down to the bottom edge.
	BackBlendWidth float64 `json:"backBlendWidth" mapstructure:"backBlendWidth"`
}

// DefaultConfig returns the layout used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MarkerScale:      1,
		ImageAngleOffset: 0,
		MarkerHalfWidth:  4,
		MarkerHalfHeight: 4,
		LabelHalfHeight:  3,
		DefaultLabelY:    7,
		Boundary: Boundary{
			HalfWidth:           60,
			HalfHeight:          35,
			ProjectionHalfWidth: 80,
		},
		PlaneDistance:  100,
		FOVBuffer:      0.05,
		BackBlendWidth: 0.35,
	}
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v))
		}
	}
	positive("markerScale", c.MarkerScale)
	positive("markerHalfWidth", c.MarkerHalfWidth)
	positive("markerHalfHeight", c.MarkerHalfHeight)
	positive("labelHalfHeight", c.LabelHalfHeight)
	positive("boundary.halfWidth", c.Boundary.HalfWidth)
	positive("boundary.halfHeight", c.Boundary.HalfHeight)
	positive("backBlendWidth", c.BackBlendWidth)
	if c.Boundary.ProjectionHalfWidth < c.Boundary.HalfWidth {
		errs = append(errs, fmt.Errorf("%w: boundary.projectionHalfWidth (%v) is smaller than boundary.halfWidth (%v)",
			ErrInvalidConfig, c.Boundary.ProjectionHalfWidth, c.Boundary.HalfWidth))
	}
	if c.FOVBuffer < 0 {
		errs = append(errs, fmt.Errorf("%w: fovBuffer must not be negative, got %v", ErrInvalidConfig, c.FOVBuffer))
	}
	return errors.Join(errs...)
}

// Extents returns the scaled marker half-width and half-height.
func (c Config) Extents() (halfWidth, halfHeight float64) {
	return c.MarkerHalfWidth * c.MarkerScale, c.MarkerHalfHeight * c.MarkerScale
}
