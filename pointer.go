package timecurve

import "time"

// dragMode is the transient pointer state machine:
// idle -> dragPoint | dragViewport | dragPlayhead -> idle.
// At most one mode is active; pointer-up always returns to idle, which is
// why hosts should forward the release even when it happens outside the
// plot area.
type dragMode int

const (
	dragIdle dragMode = iota
	dragPoint
	dragViewport
	dragPlayhead
)

type dragState struct {
	mode  dragMode
	index int // dragged control point index for dragPoint
	lastX float64
}

// clickRecord remembers the previous pointer-down for double-click
// detection: two downs on the same target within DoubleClickWindow.
type clickRecord struct {
	at    time.Time
	kind  HitKind
	index int
}

// PointerDown handles a primary-button press at canvas position (x, y).
//
// A double-click (same hit target within DoubleClickWindow) performs the
// secondary action: delete for control points (anchors exempt) and
// markers, seek for empty plot background. A single press performs the
// primary action: grab a point, insert-and-grab a point on the curve
// body, grab the playhead handle, or start panning on empty background.
func (e *Editor) PointerDown(x, y float64) {
	e.mu.Lock()
	var events []Event

	h := e.hitTest(x, y)
	now := e.now()
	isDouble := !e.lastClick.at.IsZero() &&
		now.Sub(e.lastClick.at) <= DoubleClickWindow &&
		e.lastClick.kind == h.Kind && e.lastClick.index == h.Index
	e.lastClick = clickRecord{at: now, kind: h.Kind, index: h.Index}

	inPlot := e.plot().contains(x, y)

	switch {
	case isDouble && h.Kind == HitPoint:
		e.deletePoint(h.Index)
		e.lastClick = clickRecord{}
	case isDouble && h.Kind == HitMarker:
		e.removeMarker(h.Index)
		e.lastClick = clickRecord{}
	case isDouble && h.Kind == HitNone && inPlot:
		if ev, ok := e.setPlayheadTime(e.xToTime(x)); ok {
			events = append(events, ev)
		}
		e.lastClick = clickRecord{}
	case h.Kind == HitPoint:
		e.drag = dragState{mode: dragPoint, index: h.Index, lastX: x}
	case h.Kind == HitCurve:
		// The new point takes the pixel-mapped coordinates, not the
		// interpolated value, so it may sit slightly off the curve.
		idx := e.addPointOnCurve(e.xToTime(x), e.yToValue(y))
		e.drag = dragState{mode: dragPoint, index: idx, lastX: x}
	case h.Kind == HitPlayhead:
		e.drag = dragState{mode: dragPlayhead, lastX: x}
	case h.Kind == HitMarker:
		// Markers have no primary drag action.
	case inPlot:
		e.drag = dragState{mode: dragViewport, lastX: x}
	}

	e.mu.Unlock()
	e.emitAll(events)
}

// PointerMove handles pointer motion while a drag may be active. Outside
// a drag it is a no-op; hosts can forward every move event unfiltered.
func (e *Editor) PointerMove(x, y float64) {
	e.mu.Lock()
	var events []Event

	switch e.drag.mode {
	case dragPoint:
		e.movePoint(e.drag.index, x, y)
	case dragViewport:
		e.panPixels(x - e.drag.lastX)
	case dragPlayhead:
		// Scrub: the playhead follows the pointer.
		if ev, ok := e.setPlayheadTime(e.xToTime(x)); ok {
			events = append(events, ev)
		}
	default:
		e.mu.Unlock()
		return
	}
	e.drag.lastX = x

	e.mu.Unlock()
	e.emitAll(events)
}

// PointerUp ends any active drag. If a control point was the drag target
// the edit is committed to history exactly once, on release. The state
// machine always returns to idle, wherever the release happened.
func (e *Editor) PointerUp() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag.mode == dragPoint {
		e.saveToHistory()
	}
	e.drag = dragState{}
}
