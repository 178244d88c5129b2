package timecurve

import (
	"slices"
	"sort"
)

// PointData is the wire form of a control point. Type is 0 for linear
// and 1 for Bezier; a missing type decodes to linear.
type PointData struct {
	Time  float64     `json:"time" yaml:"time"`
	Value float64     `json:"value" yaml:"value"`
	Type  SegmentKind `json:"type" yaml:"type,omitempty"`
}

// Data is the curve export blob: {points: [{time, value, type}]}.
// The engine produces and consumes in-memory structures; serialization to
// storage is the host's job.
type Data struct {
	Points []PointData `json:"points" yaml:"points"`
}

// MarkerData is the marker export blob: {markers: [t, ...]}.
type MarkerData struct {
	Markers []float64 `json:"markers" yaml:"markers"`
}

// ExportData returns the current point sequence as an export blob.
func (e *Editor) ExportData() Data {
	e.mu.Lock()
	defer e.mu.Unlock()
	d := Data{Points: make([]PointData, len(e.points))}
	for i, p := range e.points {
		d.Points[i] = PointData{Time: p.Time, Value: p.Value, Type: p.Kind}
	}
	return d
}

// ImportData replaces the point sequence with the blob's points and
// resets the history to the imported state as its sole baseline, so an
// import cannot be undone back to the pre-import curve.
//
// It reports whether the import was accepted. A nil blob or one with
// fewer than two points is rejected without mutation. Unknown type tags
// decode to linear; points arriving out of order are sorted by time
// (stable) to restore the ordering invariant.
func (e *Editor) ImportData(d *Data) bool {
	if d == nil || len(d.Points) < 2 {
		Logger().Warn("import rejected", "reason", "missing or short point list")
		return false
	}

	points := make([]ControlPoint, len(d.Points))
	for i, p := range d.Points {
		kind := p.Type
		if kind != Bezier {
			kind = Linear
		}
		points[i] = ControlPoint{Time: p.Time, Value: p.Value, Kind: kind}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Time < points[j].Time
	})

	e.mu.Lock()
	e.points = points
	e.history = [][]ControlPoint{clonePoints(points)}
	e.mu.Unlock()

	Logger().Debug("curve imported", "points", len(points))
	return true
}

// ExportMarkers returns the marker set as an export blob, ascending.
func (e *Editor) ExportMarkers() MarkerData {
	e.mu.Lock()
	defer e.mu.Unlock()
	return MarkerData{Markers: slices.Clone(e.markers)}
}

// ImportMarkers replaces the marker set with the blob's markers, sorted
// ascending. It reports whether the import was accepted; a nil blob or a
// missing marker array is rejected without mutation.
func (e *Editor) ImportMarkers(d *MarkerData) bool {
	if d == nil || d.Markers == nil {
		Logger().Warn("marker import rejected", "reason", "missing marker array")
		return false
	}
	markers := slices.Clone(d.Markers)
	sort.Float64s(markers)

	e.mu.Lock()
	e.markers = markers
	e.mu.Unlock()
	return true
}
