package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func testProjector() Projector {
	return Projector{
		Boundary:       Boundary{HalfWidth: 60, HalfHeight: 35, ProjectionHalfWidth: 80},
		BackBlendWidth: 0.35,
	}
}

func directAt(x, y float64) func() (vec.Vec2, bool) {
	return func() (vec.Vec2, bool) { return vec.Vec2{X: x, Y: y}, true }
}

func noDirect() (vec.Vec2, bool) { return vec.Vec2{}, false }

func TestVerticalOffset(t *testing.T) {
	assert.Equal(t, 0.0, VerticalOffset(100, 0))
	assert.InDelta(t, -100.0, VerticalOffset(100, math.Pi/4), 1e-9)
	assert.InDelta(t, -100.0, VerticalOffset(-100, math.Pi/4), 1e-9, "plane distance sign is ignored")
	assert.InDelta(t, 100.0, VerticalOffset(100, -math.Pi/4), 1e-9)
	assert.Equal(t, 0.0, VerticalOffset(100, math.NaN()))
}

func TestPlace_BearingZeroUsesDirectProjection(t *testing.T) {
	p := testProjector()

	called := false
	pr := p.Place(0, 0.5, 0, func() (vec.Vec2, bool) {
		called = true
		return vec.Vec2{X: 3, Y: -2}, true
	})

	assert.True(t, called)
	assert.True(t, pr.InView)
	assert.False(t, pr.OnBack)
	assert.Equal(t, 0.0, pr.Orientation)
	assert.Equal(t, vec.Vec2{X: 3, Y: -2}, pr.Raw)
}

func TestPlace_InViewWithinExtentHasZeroOrientation(t *testing.T) {
	p := testProjector()
	p.ImageAngleOffset = 0.3
	const halfFOV = 0.5

	for b := -0.49; b < halfFOV; b += 0.07 {
		for _, y := range []float64{-35, -10, 0, 20, 35} {
			pr := p.Place(b, halfFOV, 0, directAt(b*100, y))
			assert.True(t, pr.InView, "bearing %f y %f", b, y)
			assert.Equal(t, 0.0, pr.Orientation, "bearing %f y %f", b, y)
		}
	}
}

func TestPlace_InViewButAboveExtentIsNotInView(t *testing.T) {
	p := testProjector()
	p.ImageAngleOffset = 0.2

	pr := p.Place(0.1, 0.5, 0, directAt(5, 50))

	assert.False(t, pr.InView)
	assert.InDelta(t, -(0.1 + 0.2), pr.Orientation, 1e-12)
	assert.Equal(t, 35.0, pr.Raw.Y, "clamped onto the top edge")
	assert.Equal(t, 5.0, pr.Raw.X)
}

func TestPlace_InViewBelowExtentWithLowHorizonFlipsOrientation(t *testing.T) {
	p := testProjector()

	pr := p.Place(0.1, 0.5, -40, directAt(5, -60))

	assert.False(t, pr.InView)
	assert.InDelta(t, 2*math.Pi+0.1, pr.Orientation, 1e-12)
	assert.Equal(t, -35.0, pr.Raw.Y)
}

func TestPlace_MissingDirectCoordinateDefaultsToOrigin(t *testing.T) {
	p := testProjector()

	pr := p.Place(0, 0.5, 0, noDirect)

	assert.True(t, pr.InView)
	assert.Equal(t, vec.Vec2{}, pr.Raw)
}

func TestPlace_NonFiniteInputsAreZero(t *testing.T) {
	p := testProjector()

	pr := p.Place(math.NaN(), 0.5, 0, directAt(math.Inf(1), math.NaN()))

	assert.Equal(t, 0.0, pr.Bearing)
	assert.True(t, pr.InView)
	assert.Equal(t, vec.Vec2{}, pr.Raw)
}

func TestPlace_SideBearingClampsOntoEdge(t *testing.T) {
	p := testProjector()

	right := p.Place(math.Pi/2, 0.5, 0, noDirect)
	left := p.Place(-math.Pi/2, 0.5, 0, noDirect)

	assert.False(t, right.InView)
	assert.Equal(t, 60.0, right.Raw.X)
	assert.InDelta(t, 0.0, right.Raw.Y, 1e-9)
	assert.InDelta(t, -math.Pi/2, right.Orientation, 1e-12)

	assert.Equal(t, -60.0, left.Raw.X)
	assert.InDelta(t, 0.0, left.Raw.Y, 1e-9)
}

func TestPlace_SideBearingFollowsVerticalOffset(t *testing.T) {
	p := testProjector()

	pr := p.Place(math.Pi/2, 0.5, 10, noDirect)
	assert.InDelta(t, 10.0, pr.Raw.Y, 1e-9)

	pr = p.Place(math.Pi/2, 0.5, 100, noDirect)
	assert.Equal(t, 35.0, pr.Raw.Y)
}

func TestPlace_BearingPiBlendsToBottom(t *testing.T) {
	p := testProjector()

	called := false
	pr := p.Place(math.Pi, 0.5, 0, func() (vec.Vec2, bool) {
		called = true
		return vec.Vec2{X: 4, Y: 12}, true
	})

	assert.True(t, called, "back-facing markers use the direct projection")
	assert.True(t, pr.OnBack)
	assert.False(t, pr.InView)
	assert.Equal(t, -35.0, pr.Raw.Y)
	assert.Equal(t, 4.0, pr.Raw.X)
}

func TestPlace_BackBlendConvergesToBottom(t *testing.T) {
	p := testProjector()

	prev := math.Inf(1)
	for _, b := range []float64{math.Pi - 0.35, math.Pi - 0.3, math.Pi - 0.2, math.Pi - 0.1, math.Pi - 0.01, math.Pi - 1e-6} {
		pr := p.Place(b, 0.5, 0, directAt(0, 20))
		assert.LessOrEqual(t, pr.Raw.Y, prev, "bearing %f", b)
		assert.GreaterOrEqual(t, pr.Raw.Y, -35.0)
		prev = pr.Raw.Y
	}
	assert.InDelta(t, -35.0, prev, 1e-3)

	pr := p.Place(math.Pi-0.35, 0.5, 0, directAt(0, 20))
	assert.InDelta(t, 20.0, pr.Raw.Y, 1e-9, "blend starts at zero")
}

func TestPlace_NegativeBackBearing(t *testing.T) {
	p := testProjector()

	pr := p.Place(-math.Pi+1e-9, 0.5, 0, directAt(-3, 10))

	assert.True(t, pr.OnBack)
	assert.InDelta(t, -35.0, pr.Raw.Y, 1e-6)
}

func TestAngleToBoundary_SegmentsAreContinuous(t *testing.T) {
	b := Boundary{HalfWidth: 60, HalfHeight: 35, ProjectionHalfWidth: 80}

	for _, halfFOV := range []float64{0.2, 0.5, 0.9} {
		h := halfFOV * 180 / math.Pi

		// top meets right at +h
		assert.Equal(t, topSegment(h, h, b), rightSegment(h, h, b))
		assert.Equal(t, vec.Vec2{X: 80, Y: 35}, topSegment(h, h, b))

		// top meets left at -h
		assert.Equal(t, topSegment(-h, h, b), leftSegment(-h, h, b))
		assert.Equal(t, vec.Vec2{X: -80, Y: 35}, leftSegment(-h, h, b))

		// right meets bottom at 180-h
		assert.Equal(t, rightSegment(180-h, h, b), bottomSegment(180-h, h, b))
		assert.Equal(t, vec.Vec2{X: 80, Y: -35}, rightSegment(180-h, h, b))

		// left meets bottom at -180+h
		assert.Equal(t, leftSegment(-180+h, h, b), bottomSegment(-180+h, h, b))

		// both halves of the bottom meet at ±180
		assert.Equal(t, bottomSegment(180, h, b), bottomSegment(-180, h, b))
		assert.Equal(t, 0.0, bottomSegment(180, h, b).X)
	}
}

func TestAngleToBoundary_Dispatch(t *testing.T) {
	b := Boundary{HalfWidth: 60, HalfHeight: 35, ProjectionHalfWidth: 80}
	const halfFOV = 0.5

	top := AngleToBoundary(0, halfFOV, b)
	assert.Equal(t, vec.Vec2{X: 0, Y: 35}, top)

	right := AngleToBoundary(math.Pi/2, halfFOV, b)
	assert.Equal(t, 80.0, right.X)
	assert.InDelta(t, 0.0, right.Y, 1e-9)

	left := AngleToBoundary(-math.Pi/2, halfFOV, b)
	assert.Equal(t, -80.0, left.X)

	bottom := AngleToBoundary(math.Pi, halfFOV, b)
	assert.InDelta(t, 0.0, bottom.X, 1e-9)
	assert.Equal(t, -35.0, bottom.Y)

	nearBack := AngleToBoundary(-math.Pi+0.25, halfFOV, b)
	assert.Equal(t, -35.0, nearBack.Y)
	assert.Less(t, nearBack.X, 0.0)
	assert.Greater(t, nearBack.X, -80.0)
}

func TestAngleToBoundary_ContinuousAcrossAngles(t *testing.T) {
	b := Boundary{HalfWidth: 60, HalfHeight: 35, ProjectionHalfWidth: 80}
	const halfFOV = 0.5

	prev := AngleToBoundary(-math.Pi+1e-9, halfFOV, b)
	for deg := -179.9; deg <= 180; deg += 0.1 {
		cur := AngleToBoundary(deg*math.Pi/180, halfFOV, b)
		step := math.Hypot(cur.X-prev.X, cur.Y-prev.Y)
		require.Less(t, step, 2.0, "jump at %f°", deg)
		prev = cur
	}
}
