package timecurve

import "math"

// HitKind classifies what a pointer-down position lands on.
type HitKind int

const (
	// HitNone means no interactive element was hit.
	HitNone HitKind = iota

	// HitPoint means a control point was hit.
	HitPoint

	// HitCurve means the curve body was hit between control points.
	HitCurve

	// HitPlayhead means the playhead handle above the plot was hit.
	HitPlayhead

	// HitMarker means a marker line was hit.
	HitMarker
)

// Hit is the result of classifying a pointer position.
type Hit struct {
	Kind  HitKind
	Index int // control point or marker index; -1 otherwise
}

// HitTest classifies the canvas position (x, y) against the current
// state. Classes are evaluated in strict priority order: control points,
// curve body, playhead handle, markers.
func (e *Editor) HitTest(x, y float64) Hit {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hitTest(x, y)
}

// hitTest implements HitTest. Caller holds e.mu.
func (e *Editor) hitTest(x, y float64) Hit {
	// 1. Control points, first match in sequence order.
	for i, p := range e.points {
		px := e.timeToX(p.Time)
		py := e.valueToY(p.Value)
		if math.Hypot(x-px, y-py) <= PointHitRadius {
			return Hit{Kind: HitPoint, Index: i}
		}
	}

	plot := e.plot()

	// 2. Curve body: compare the clicked value against the interpolated
	// value at the clicked time.
	if plot.contains(x, y) {
		t := e.xToTime(x)
		if t >= e.points[0].Time && t <= e.points[len(e.points)-1].Time {
			if math.Abs(e.yToValue(y)-valueAt(e.points, t)) < CurveHitTolerance {
				return Hit{Kind: HitCurve, Index: -1}
			}
		}
	}

	// 3. Playhead handle, only reachable while the playhead is visible.
	if e.viewport.Contains(e.playheadTime) {
		px := e.timeToX(e.playheadTime)
		if math.Abs(x-px) <= PlayheadHandleSize/2 &&
			y >= plot.top-PlayheadHandleSize && y <= plot.top {
			return Hit{Kind: HitPlayhead, Index: -1}
		}
	}

	// 4. Markers: a narrow vertical band across the plot.
	if y >= plot.top && y <= plot.top+plot.height {
		for i, m := range e.markers {
			if math.Abs(x-e.timeToX(m)) <= MarkerHitRadius {
				return Hit{Kind: HitMarker, Index: i}
			}
		}
	}

	return Hit{Kind: HitNone, Index: -1}
}
