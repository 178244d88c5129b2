package timecurve

// SegmentKind selects the interpolation style of the segment that ends at
// a control point. The tag is carried on the point for convenience; a
// segment is evaluated as Bezier when either of its endpoints is tagged
// Bezier.
type SegmentKind int

const (
	// Linear interpolates a straight line across the segment.
	Linear SegmentKind = iota

	// Bezier interpolates a cubic ease across the segment. Both control
	// handles collapse to the endpoint values, so the ease is symmetric
	// and fully determined by the two endpoints.
	Bezier
)

// String returns the kind name.
func (k SegmentKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Bezier:
		return "bezier"
	default:
		return "unknown"
	}
}

// ControlPoint is one point of the edited curve.
// Time is in seconds from the start of the timeline; Value is a percent
// in [0, 100]. Points are kept ordered by non-decreasing Time. The first
// and last points are anchors: the first is pinned at time 0 and the two
// of them can never be deleted.
type ControlPoint struct {
	Time  float64
	Value float64
	Kind  SegmentKind
}

// clonePoints returns a deep copy of a point sequence. ControlPoint has
// value semantics, so copying the slice is a full snapshot.
func clonePoints(points []ControlPoint) []ControlPoint {
	out := make([]ControlPoint, len(points))
	copy(out, points)
	return out
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
