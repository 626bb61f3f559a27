package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MarkerScale = 0
	cfg.LabelHalfHeight = math.NaN()
	cfg.Boundary.ProjectionHalfWidth = 10
	cfg.FOVBuffer = -0.1

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	msg := err.Error()
	assert.Contains(t, msg, "markerScale")
	assert.Contains(t, msg, "labelHalfHeight")
	assert.Contains(t, msg, "projectionHalfWidth")
	assert.Contains(t, msg, "fovBuffer")
}

func TestExtents_AreScaled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MarkerScale = 1.5

	hw, hh := cfg.Extents()
	assert.Equal(t, 6.0, hw)
	assert.Equal(t, 6.0, hh)
}
