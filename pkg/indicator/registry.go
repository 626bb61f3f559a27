package indicator

import (
	"context"

	"github.com/OCAP2/arlayout/pkg/core"
)

// AddMarker registers m. Adding an ID that is already registered does nothing.
//
// When place is given the marker is associated with it, an added notification is
// published and, if an auxiliary factory is configured, an auxiliary object is created
// now or, without a geolocation fix, on the first frame that has one.
func (e *Engine) AddMarker(m core.Marker, place *core.Place) {
	en := &entry{marker: m}
	if place != nil {
		p := *place
		en.place = &p
	}
	if !e.markers.Add(m.ID(), en) {
		e.logger.Debug("marker already registered", "marker", m.ID())
		return
	}
	m.SetVisible(e.visible(en))
	e.logger.Debug("marker added", "marker", m.ID(), "markers", e.markers.Len())

	if en.place == nil {
		return
	}
	if e.factory != nil {
		if user, ok := e.pose(); ok {
			e.createAuxiliary(en, user)
		} else {
			e.pending.Add(m.ID())
			e.logger.Debug("auxiliary deferred until geolocation is available", "marker", m.ID())
		}
	}
	e.added.Publish(MarkerAdded{Marker: m, Place: *en.place})
}

// RemoveMarker unregisters m, destroying its auxiliary object and any deferred creation.
// Removing a marker that is not registered does nothing.
func (e *Engine) RemoveMarker(m core.Marker) {
	en, ok := e.markers.Get(m.ID())
	if !ok {
		return
	}
	e.removed.Publish(MarkerRemoved{Marker: en.marker})
	e.destroyAuxiliary(en)
	e.pending.Remove(m.ID())
	e.markers.Delete(m.ID())
	e.logger.Debug("marker removed", "marker", m.ID(), "markers", e.markers.Len())
}

// RemoveAll unregisters every marker and destroys all auxiliary objects.
// No removed notifications are published.
func (e *Engine) RemoveAll() {
	for _, en := range e.markers.Values() {
		e.destroyAuxiliary(en)
	}
	e.pending.Clear()
	e.markers.Reset()
	e.logger.Debug("all markers removed")
}

// Markers returns the registered markers in registration order.
func (e *Engine) Markers() []core.Marker {
	entries := e.markers.Values()
	out := make([]core.Marker, 0, len(entries))
	for _, en := range entries {
		out = append(out, en.marker)
	}
	return out
}

// AuxiliaryObjects returns the live auxiliary objects in marker registration order.
func (e *Engine) AuxiliaryObjects() []core.Auxiliary {
	var out []core.Auxiliary
	for _, en := range e.markers.Values() {
		if en.aux != nil {
			out = append(out, en.aux)
		}
	}
	return out
}

// SetSelected changes the selected place. With displayOnlySelected enabled only the marker
// associated with place stays visible; nil shows every marker.
func (e *Engine) SetSelected(place *core.Place) {
	if place != nil {
		p := *place
		e.selected = &p
	} else {
		e.selected = nil
	}
	if !e.cfg.DisplayOnlySelected {
		return
	}
	for _, en := range e.markers.Values() {
		en.marker.SetVisible(e.visible(en))
	}
}

func (e *Engine) visible(en *entry) bool {
	if !e.cfg.DisplayOnlySelected || e.selected == nil {
		return true
	}
	return en.place != nil && en.place.ID == e.selected.ID
}

func (e *Engine) createAuxiliary(en *entry, user core.UserPose) {
	aux, err := e.factory.Create(en.marker, *en.place, user)
	if err != nil {
		e.metrics.auxFailures.Add(context.Background(), 1)
		e.logger.Error("failed to create auxiliary object", "marker", en.marker.ID(), "error", err)
		return
	}
	en.aux = aux
}

func (e *Engine) destroyAuxiliary(en *entry) {
	if en.aux == nil {
		return
	}
	if e.factory != nil {
		e.factory.Destroy(en.aux)
	}
	en.aux = nil
}
