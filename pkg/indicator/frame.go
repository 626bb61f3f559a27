package indicator

import (
	"context"
	"math"
	"time"

	"github.com/OCAP2/arlayout/internal/geo"
	"github.com/OCAP2/arlayout/internal/layout"
	"github.com/dustin/go-humanize"
	"seehuhn.de/go/geom/vec"
)

// MarkerLayout is what the last frame decided for one marker.
type MarkerLayout struct {
	ID          string      `json:"id"`
	Zone        layout.Zone `json:"zone"`
	Bearing     float64     `json:"bearing"`
	Distance    float64     `json:"distance"`
	Raw         vec.Vec2    `json:"raw"`
	Final       vec.Vec2    `json:"final"`
	Orientation float64     `json:"orientation"`
	InView      bool        `json:"inView"`
	LabelY      float64     `json:"labelY"`
	DistanceY   float64     `json:"distanceY"`
	Visible     bool        `json:"visible"`
}

// Update lays out one frame. It does nothing until the camera is ready.
func (e *Engine) Update() {
	ctx := context.Background()
	if e.camera == nil || !e.camera.Ready() {
		e.metrics.skipped.Add(ctx, 1)
		e.logger.Debug("camera not ready, frame skipped")
		return
	}
	start := time.Now()
	frame := e.frame.Inc()

	user, hasFix := e.pose()
	halfFOV := e.camera.FieldOfView()/2 - e.cfg.FOVBuffer
	offset := layout.VerticalOffset(e.cfg.PlaneDistance, e.camera.Pitch())

	entries := e.markers.Values()
	projections := make([]layout.Projection, len(entries))
	raw := make([]vec.Vec2, len(entries))
	for i, en := range entries {
		projections[i] = e.projector.Project(en.marker, user, e.camera, halfFOV, offset)
		raw[i] = projections[i].Raw
	}

	res := e.pipeline.Run(raw)

	for i, en := range entries {
		pr, pl, a := projections[i], res.Placements[i], res.Assignments[i]
		m := en.marker
		m.SetLocalPosition(pl.Final)
		m.SetOrientation(pr.Orientation)
		m.SetInView(pr.InView)
		m.SetDistance(pr.Distance)
		m.Label().SetLocalY(pl.LabelY)
		m.DistanceText().SetLocalY(pl.DistanceY)

		en.last = MarkerLayout{
			ID:          m.ID(),
			Zone:        a.Zone(),
			Bearing:     pr.Bearing,
			Distance:    pr.Distance,
			Raw:         pr.Raw,
			Final:       pl.Final,
			Orientation: pr.Orientation,
			InView:      pr.InView,
			LabelY:      pl.LabelY,
			DistanceY:   pl.DistanceY,
			Visible:     e.visible(en),
		}
		en.laidOut = true
		e.metrics.assignments.Add(ctx, 1, e.metrics.zoneAttrs[a.Zone()])

		if en.aux != nil {
			en.aux.SetPlacement(pr.Bearing, pr.Distance)
			en.aux.SetFacing(geo.NormalizeAngle(pr.Bearing + math.Pi))
			en.aux.SetText(humanize.SIWithDigits(pr.Distance, 1, "m"))
		}
	}

	retried := e.pending.Drain(
		func() bool { return hasFix },
		func(id string) {
			en, ok := e.markers.Get(id)
			if !ok || en.aux != nil || en.place == nil || e.factory == nil {
				return
			}
			e.createAuxiliary(en, user)
		},
	)

	elapsed := time.Since(start)
	e.metrics.frames.Add(ctx, 1)
	e.metrics.frameDuration.Record(ctx, float64(elapsed.Microseconds())/1000)
	e.logger.Debug("frame laid out",
		"frame", frame,
		"markers", len(entries),
		"buckets", res.Buckets.Len(),
		"auxRetried", retried,
		"duration", elapsed,
	)
}

// Layout returns the last frame's layout of every registered marker that has been laid out,
// in registration order.
func (e *Engine) Layout() []MarkerLayout {
	entries := e.markers.Values()
	out := make([]MarkerLayout, 0, len(entries))
	for _, en := range entries {
		if en.laidOut {
			out = append(out, en.last)
		}
	}
	return out
}
