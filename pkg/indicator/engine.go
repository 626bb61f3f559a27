// Package indicator lays out AR navigation markers every frame: markers in front of the user
// are drawn where they are, markers outside the camera's view are pinned to the edge of the
// marker-plane pointing toward their target, and overlapping markers are spread apart.
//
// An Engine is driven by the host's frame loop. Registration calls, Update and the accessors
// are expected on the same goroutine.
package indicator

import (
	"fmt"
	"log/slog"

	"github.com/OCAP2/arlayout/internal/cache"
	"github.com/OCAP2/arlayout/internal/collision"
	"github.com/OCAP2/arlayout/internal/layout"
	"github.com/OCAP2/arlayout/internal/notify"
	"github.com/OCAP2/arlayout/internal/pending"
	"github.com/OCAP2/arlayout/pkg/core"
)

// Logger interface for pluggable logging.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. Defaults to slog.Default().
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithResolver replaces the default collision resolver.
func WithResolver(r layout.Resolver) Option {
	return func(e *Engine) {
		e.resolver = r
	}
}

// WithAuxiliaryFactory enables world-anchored auxiliary objects for markers added with a place.
func WithAuxiliaryFactory(f core.AuxiliaryFactory) Option {
	return func(e *Engine) {
		e.factory = f
	}
}

// WithGeolocation sets the source of the user's pose.
func WithGeolocation(g core.Geolocation) Option {
	return func(e *Engine) {
		e.geolocation = g
	}
}

type entry struct {
	marker core.Marker
	place  *core.Place
	aux    core.Auxiliary

	last    MarkerLayout
	laidOut bool
}

// Engine owns the marker registry and runs the per-frame layout.
type Engine struct {
	cfg         layout.Config
	camera      core.Camera
	geolocation core.Geolocation
	factory     core.AuxiliaryFactory
	resolver    layout.Resolver
	logger      Logger

	projector layout.Projector
	pipeline  *layout.Pipeline

	markers  *cache.MarkerCache[*entry]
	pending  *pending.Set[string]
	frame    cache.SafeCounter
	selected *core.Place
	lastPose core.UserPose

	added   *notify.Topic[MarkerAdded]
	removed *notify.Topic[MarkerRemoved]

	metrics instruments
}

// New creates an Engine for the given camera. The config is validated and fixed for the
// lifetime of the engine. Uses the global OTel meter for metrics (no-op if not configured).
func New(camera core.Camera, cfg layout.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg,
		camera:   camera,
		resolver: collision.Spreader{},
		logger:   slog.Default(),
		markers:  cache.NewMarkerCache[*entry](),
		pending:  pending.New[string](),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.projector = layout.NewProjector(cfg)
	e.pipeline = layout.NewPipeline(cfg, e.resolver)

	var err error
	if e.added, err = notify.New[MarkerAdded]("marker.added", e.logger); err != nil {
		return nil, fmt.Errorf("creating added topic: %w", err)
	}
	if e.removed, err = notify.New[MarkerRemoved]("marker.removed", e.logger); err != nil {
		return nil, fmt.Errorf("creating removed topic: %w", err)
	}
	if err := e.initMetrics(); err != nil {
		return nil, err
	}
	return e, nil
}

// Config returns the layout config the engine was created with.
func (e *Engine) Config() layout.Config {
	return e.cfg
}

// FrameNumber returns the number of frames laid out so far.
func (e *Engine) FrameNumber() int64 {
	return e.frame.Value()
}

// pose returns the current user pose, falling back to the last known one.
func (e *Engine) pose() (core.UserPose, bool) {
	if e.geolocation == nil {
		return e.lastPose, false
	}
	p, ok := e.geolocation.Pose()
	if !ok {
		return e.lastPose, false
	}
	e.lastPose = p
	return p, true
}
