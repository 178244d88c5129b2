package timecurve

import (
	"honnef.co/go/curve"
)

// ValueAt returns the curve value at time t.
//
// Outside the span of the point sequence the nearest endpoint value is
// returned. Inside, the containing segment is evaluated: a cubic Bezier
// ease when either endpoint is tagged Bezier, a straight line otherwise.
// ValueAt is a pure query; hit-testing and playback reporting both go
// through it, so the three always agree.
func (e *Editor) ValueAt(t float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return valueAt(e.points, t)
}

// valueAt evaluates a point sequence at time t.
func valueAt(points []ControlPoint, t float64) float64 {
	if len(points) == 0 {
		return 0
	}
	if t <= points[0].Time {
		return points[0].Value
	}
	last := points[len(points)-1]
	if t >= last.Time {
		return last.Value
	}
	for i := 0; i < len(points)-1; i++ {
		p0, p1 := points[i], points[i+1]
		if t < p0.Time || t >= p1.Time {
			continue
		}
		span := p1.Time - p0.Time
		if span <= 0 {
			return p1.Value
		}
		u := (t - p0.Time) / span
		if p0.Kind == Bezier || p1.Kind == Bezier {
			return easeValue(p0.Value, p1.Value, u)
		}
		return p0.Value + (p1.Value-p0.Value)*u
	}
	return last.Value
}

// easeValue evaluates the segment ease at normalized position u in [0, 1].
//
// The ease is a cubic Bezier whose control ordinates all collapse to the
// endpoint values: (v0, v0, v1, v1). This is intentionally not a generic
// cubic with independent tangents; rendering and hit-testing rely on the
// exact same shape.
func easeValue(v0, v1, u float64) float64 {
	b := curve.CubicBez{
		P0: curve.Pt(0, v0),
		P1: curve.Pt(1.0/3, v0),
		P2: curve.Pt(2.0/3, v1),
		P3: curve.Pt(1, v1),
	}
	return b.Eval(u).Y
}
