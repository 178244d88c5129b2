package timecurve

import "time"

// Configuration defaults.
const (
	// DefaultTotalDuration is the full timeline length, seconds.
	DefaultTotalDuration = 1800.0

	// DefaultViewportDuration is the initially visible window, seconds.
	DefaultViewportDuration = 30.0

	// DefaultMinViewportDuration bounds how far zoom-in may go, seconds.
	DefaultMinViewportDuration = 10.0

	// DefaultMaxViewportDuration bounds how far zoom-out may go, seconds.
	DefaultMaxViewportDuration = 90.0

	// DefaultLineColor is the curve stroke color.
	DefaultLineColor = "#4CAF50"

	// DefaultFrameRate is the playback timer rate, frames per second.
	DefaultFrameRate = 20.0

	// DefaultCanvasWidth and DefaultCanvasHeight size the render target.
	DefaultCanvasWidth  = 960
	DefaultCanvasHeight = 400
)

// Interaction constants. These thresholds define pointer behavior and must
// stay in sync with any host that replicates hit feedback (hover cursors).
const (
	// PointRadius is the drawn radius of a control point, pixels.
	PointRadius = 5.0

	// PointHitRadius is the pick distance for control points: twice the
	// drawn radius, measured as Euclidean pixel distance.
	PointHitRadius = 2 * PointRadius

	// CurveHitTolerance is the maximum |clicked - curve| distance, in
	// percent value units, for a click to count as hitting the curve body.
	CurveHitTolerance = 5.0

	// MarkerHitRadius is the horizontal pick distance for markers, pixels.
	MarkerHitRadius = 3.0

	// PlayheadHandleSize is the side of the square hotspot above the plot
	// used to grab the playhead, pixels.
	PlayheadHandleSize = 12.0

	// DoubleClickWindow is the maximum delay between two pointer-downs on
	// the same target for the pair to count as a double-click.
	DoubleClickWindow = 300 * time.Millisecond

	// ZoomStep is how much one wheel notch changes the visible window,
	// seconds.
	ZoomStep = 5.0
)

// HistoryCapacity is the maximum number of snapshots the undo history
// retains; the oldest snapshot is evicted first.
const HistoryCapacity = 50

// Plot geometry. The plotting rectangle is the canvas inset by these
// margins; the top margin also hosts the playhead handle.
const (
	marginLeft   = 48.0
	marginRight  = 16.0
	marginTop    = 24.0
	marginBottom = 28.0
)

// defaultAnchorValue is the value both anchors start at, percent.
const defaultAnchorValue = 50.0

// endAnchorMinGap keeps the last anchor strictly after its predecessor so
// segment normalization never divides by zero.
const endAnchorMinGap = 1e-3
