package indicator

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/OCAP2/arlayout/pkg/core"
	"seehuhn.de/go/geom/vec"
)

// testLogger implements Logger for testing
type testLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *testLogger) log(level, msg string, keysAndValues []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, fmt.Sprintf("%s: %s %v", level, msg, keysAndValues))
}

func (l *testLogger) Debug(msg string, keysAndValues ...any) { l.log("DEBUG", msg, keysAndValues) }
func (l *testLogger) Info(msg string, keysAndValues ...any)  { l.log("INFO", msg, keysAndValues) }
func (l *testLogger) Warn(msg string, keysAndValues ...any)  { l.log("WARN", msg, keysAndValues) }
func (l *testLogger) Error(msg string, keysAndValues ...any) { l.log("ERROR", msg, keysAndValues) }

func (l *testLogger) contains(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.messages {
		if strings.Contains(m, s) {
			return true
		}
	}
	return false
}

type fakeCamera struct {
	ready bool
	fov   float64
	pitch float64
}

func (c *fakeCamera) Ready() bool          { return c.ready }
func (c *fakeCamera) FieldOfView() float64 { return c.fov }
func (c *fakeCamera) Pitch() float64       { return c.pitch }

type fakeGeolocation struct {
	pose core.UserPose
	ok   bool
}

func (g *fakeGeolocation) Pose() (core.UserPose, bool) { return g.pose, g.ok }

type fakeElement struct{ y float64 }

func (e *fakeElement) SetLocalY(y float64) { e.y = y }
func (e *fakeElement) LocalY() float64     { return e.y }

// fakeMarker returns fixed geometry and records what the engine writes back.
type fakeMarker struct {
	id       string
	bearing  float64
	distance float64
	direct   vec.Vec2
	noDirect bool

	directCalls int

	position    vec.Vec2
	orientation float64
	setDistance float64
	inView      bool
	visible     bool
	label       fakeElement
	distText    fakeElement
}

func (m *fakeMarker) ID() string                             { return m.id }
func (m *fakeMarker) PhysicalDistance(core.UserPose) float64 { return m.distance }
func (m *fakeMarker) Bearing(core.UserPose) float64          { return m.bearing }
func (m *fakeMarker) SetOrientation(rad float64)             { m.orientation = rad }
func (m *fakeMarker) SetDistance(d float64)                  { m.setDistance = d }
func (m *fakeMarker) SetInView(inView bool)                  { m.inView = inView }
func (m *fakeMarker) SetLocalPosition(p vec.Vec2)            { m.position = p }
func (m *fakeMarker) SetVisible(visible bool)                { m.visible = visible }
func (m *fakeMarker) Label() core.Element                    { return &m.label }
func (m *fakeMarker) DistanceText() core.Element             { return &m.distText }
func (m *fakeMarker) ScreenSpaceCoordinate(core.UserPose, core.Camera, float64) (vec.Vec2, bool) {
	m.directCalls++
	return m.direct, !m.noDirect
}

type fakeAux struct {
	markerID string
	bearing  float64
	distance float64
	facing   float64
	text     string
}

func (a *fakeAux) MarkerID() string { return a.markerID }
func (a *fakeAux) SetPlacement(bearing, distance float64) {
	a.bearing, a.distance = bearing, distance
}
func (a *fakeAux) SetFacing(rad float64) { a.facing = rad }
func (a *fakeAux) SetText(text string)   { a.text = text }

var errFactory = errors.New("factory failure")

type fakeFactory struct {
	fail      bool
	attempts  int
	created   []*fakeAux
	destroyed []string
}

func (f *fakeFactory) Create(m core.Marker, _ core.Place, _ core.UserPose) (core.Auxiliary, error) {
	f.attempts++
	if f.fail {
		return nil, errFactory
	}
	a := &fakeAux{markerID: m.ID()}
	f.created = append(f.created, a)
	return a, nil
}

func (f *fakeFactory) Destroy(a core.Auxiliary) {
	f.destroyed = append(f.destroyed, a.MarkerID())
}
