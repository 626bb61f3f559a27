package indicator

import (
	"github.com/OCAP2/arlayout/internal/notify"
	"github.com/OCAP2/arlayout/pkg/core"
)

// MarkerAdded is published when a marker is registered together with a place.
type MarkerAdded struct {
	Marker core.Marker
	Place  core.Place
}

// MarkerRemoved is published when a registered marker is removed.
type MarkerRemoved struct {
	Marker core.Marker
}

// OnMarkerAdded subscribes h to added notifications. Call the returned function to unsubscribe.
func (e *Engine) OnMarkerAdded(h func(MarkerAdded)) (unsubscribe func()) {
	return e.added.Subscribe(h, notify.Logged())
}

// OnMarkerRemoved subscribes h to removed notifications. Call the returned function to unsubscribe.
func (e *Engine) OnMarkerRemoved(h func(MarkerRemoved)) (unsubscribe func()) {
	return e.removed.Subscribe(h, notify.Logged())
}
