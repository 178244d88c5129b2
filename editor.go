package timecurve

import (
	"sync"
	"time"

	"github.com/gogpu/gg"
)

// Editor is the curve editor engine.
// It owns the control point sequence, markers, viewport, playhead, and
// undo history, and exposes every operation a host shell needs: pointer
// and wheel handling, playback transport, import/export, and drawing.
//
// All methods are safe for concurrent use. The playback ticker goroutine
// and the host event loop serialize on the same internal mutex, so every
// mutation happens in a single synchronous turn and change events are
// dispatched before the mutating call returns.
type Editor struct {
	mu   sync.Mutex
	opts options

	// Model state
	points  []ControlPoint
	markers []float64

	// View state
	viewport Viewport

	// Playback state
	playheadTime float64
	playing      bool
	stopTick     chan struct{}

	// History: oldest first, most recent last. The last entry always
	// mirrors the last explicitly saved point sequence.
	history [][]ControlPoint

	// Event registry
	listeners map[string][]listenerEntry

	// Transient interaction state
	drag      dragState
	lastClick clickRecord

	// Render target, created on first draw.
	dc *gg.Context

	// now is replaced in tests to control double-click timing.
	now func() time.Time
}

// New creates an Editor with the given options.
//
// The editor starts with a flat two-anchor curve at value 50, an empty
// marker set, the viewport at the start of the timeline, and a history
// containing the initial state as its sole baseline.
func New(opts ...Option) *Editor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.viewportDuration = clamp(o.viewportDuration, o.minViewportDuration, o.maxViewportDuration)
	if o.viewportDuration > o.totalDuration {
		o.viewportDuration = o.totalDuration
	}

	e := &Editor{
		opts:      o,
		viewport:  Viewport{Start: 0, Duration: o.viewportDuration},
		listeners: make(map[string][]listenerEntry),
		now:       time.Now,
	}
	e.points = e.defaultPoints()
	e.history = [][]ControlPoint{clonePoints(e.points)}
	return e
}

// defaultPoints returns the built-in two-anchor flat curve.
func (e *Editor) defaultPoints() []ControlPoint {
	return []ControlPoint{
		{Time: 0, Value: defaultAnchorValue, Kind: Linear},
		{Time: e.opts.totalDuration, Value: defaultAnchorValue, Kind: Linear},
	}
}

// Reset restores the editor to its initial state: playback stopped,
// playhead at zero, the default two-anchor curve, the viewport at the
// start of the timeline, and the history re-baselined. Markers are kept;
// they are independent of curve history.
func (e *Editor) Reset() {
	e.mu.Lock()
	var events []Event
	if ev, ok := e.setPlaying(false); ok {
		events = append(events, ev)
	}
	if ev, ok := e.setPlayheadTime(0); ok {
		events = append(events, ev)
	}
	e.points = e.defaultPoints()
	e.viewport = Viewport{Start: 0, Duration: e.opts.viewportDuration}
	e.history = [][]ControlPoint{clonePoints(e.points)}
	e.drag = dragState{}
	e.lastClick = clickRecord{}
	e.mu.Unlock()

	Logger().Debug("editor reset")
	e.emitAll(events)
}

// TotalDuration returns the full timeline length in seconds.
func (e *Editor) TotalDuration() float64 {
	return e.opts.totalDuration
}

// Points returns a snapshot of the control point sequence.
func (e *Editor) Points() []ControlPoint {
	e.mu.Lock()
	defer e.mu.Unlock()
	return clonePoints(e.points)
}

// Viewport returns the currently visible time window.
func (e *Editor) Viewport() Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewport
}

// CanvasSize returns the canvas dimensions in pixels.
func (e *Editor) CanvasSize() (width, height int) {
	return e.opts.canvasWidth, e.opts.canvasHeight
}
