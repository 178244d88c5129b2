package timecurve

// Editing operations. All of them keep the point sequence ordered by
// non-decreasing time before returning. Callers hold e.mu.

// addPointOnCurve inserts a new control point at the sorted position for
// t and returns its index. The insertion is only reachable through a
// successful curve-body hit, so t always falls between the anchors. The
// new point adopts the kind of the segment it splits (the kind tagged on
// the segment's end point) and the edit is committed to history.
func (e *Editor) addPointOnCurve(t, v float64) int {
	t = clamp(t, e.points[0].Time, e.points[len(e.points)-1].Time)
	v = clamp(v, 0, 100)

	idx := len(e.points) - 1
	for i := 1; i < len(e.points); i++ {
		if t <= e.points[i].Time {
			idx = i
			break
		}
	}

	cp := ControlPoint{Time: t, Value: v, Kind: e.points[idx].Kind}
	e.points = append(e.points, ControlPoint{})
	copy(e.points[idx+1:], e.points[idx:])
	e.points[idx] = cp

	e.saveToHistory()
	return idx
}

// movePoint moves the control point at index i toward the canvas position
// (x, y), with role-based clamping:
//
//   - the start anchor moves only in value
//   - the end anchor moves in time, kept strictly after its predecessor
//     and within the timeline, and in value
//   - interior points keep their time within the neighbor interval
//
// The move is transient; history is saved once, on pointer release.
func (e *Editor) movePoint(i int, x, y float64) {
	if i < 0 || i >= len(e.points) {
		return
	}
	v := clamp(e.yToValue(y), 0, 100)
	t := e.xToTime(x)
	last := len(e.points) - 1

	switch i {
	case 0:
		e.points[0].Value = v
	case last:
		lo := e.points[last-1].Time + endAnchorMinGap
		e.points[last].Time = clamp(t, lo, e.opts.totalDuration)
		e.points[last].Value = v
	default:
		e.points[i].Time = clamp(t, e.points[i-1].Time, e.points[i+1].Time)
		e.points[i].Value = v
	}
}

// deletePoint removes the control point at index i and commits to
// history. Anchors are exempt: deleting the first or last point is a
// no-op, as is an out-of-range index.
func (e *Editor) deletePoint(i int) {
	if i <= 0 || i >= len(e.points)-1 {
		return
	}
	e.points = append(e.points[:i], e.points[i+1:]...)
	e.saveToHistory()
}
