package timecurve

import (
	"slices"
	"sort"
)

// Markers are bare timestamp annotations, independent of the curve: they
// take no part in undo history and survive Reset.

// AddMarker inserts a marker at time t, clamped to the timeline, and
// returns its index in the ascending marker order.
func (e *Editor) AddMarker(t float64) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	t = clamp(t, 0, e.opts.totalDuration)
	i := sort.SearchFloat64s(e.markers, t)
	e.markers = append(e.markers, 0)
	copy(e.markers[i+1:], e.markers[i:])
	e.markers[i] = t
	return i
}

// RemoveMarker deletes the marker at the given index. Out-of-range
// indexes are ignored.
func (e *Editor) RemoveMarker(i int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeMarker(i)
}

// removeMarker implements RemoveMarker. Caller holds e.mu.
func (e *Editor) removeMarker(i int) {
	if i < 0 || i >= len(e.markers) {
		return
	}
	e.markers = append(e.markers[:i], e.markers[i+1:]...)
}

// ClearMarkers removes all markers.
func (e *Editor) ClearMarkers() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.markers = nil
}

// Markers returns a snapshot of the marker times, ascending.
func (e *Editor) Markers() []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.markers)
}
