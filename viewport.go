package timecurve

// Viewport is the visible time window of the timeline.
// It is derived view state: it is not part of export blobs and not part
// of undo history.
type Viewport struct {
	Start    float64 // seconds, clamped to [0, total-Duration]
	Duration float64 // seconds visible, clamped to the viewport limits
}

// End returns the first time past the visible window.
func (v Viewport) End() float64 {
	return v.Start + v.Duration
}

// Contains reports whether t falls inside the visible window.
func (v Viewport) Contains(t float64) bool {
	return t >= v.Start && t <= v.End()
}

// plotRect is the plotting rectangle in canvas pixels: the canvas inset
// by the fixed margins.
type plotRect struct {
	left, top, width, height float64
}

func (p plotRect) contains(x, y float64) bool {
	return x >= p.left && x <= p.left+p.width && y >= p.top && y <= p.top+p.height
}

// Unexported Editor methods below assume e.mu is held by the caller.

func (e *Editor) plot() plotRect {
	return plotRect{
		left:   marginLeft,
		top:    marginTop,
		width:  float64(e.opts.canvasWidth) - marginLeft - marginRight,
		height: float64(e.opts.canvasHeight) - marginTop - marginBottom,
	}
}

// xToTime maps a canvas x pixel to a time on the timeline.
func (e *Editor) xToTime(x float64) float64 {
	p := e.plot()
	return e.viewport.Start + (x-p.left)/p.width*e.viewport.Duration
}

// timeToX is the exact algebraic inverse of xToTime.
func (e *Editor) timeToX(t float64) float64 {
	p := e.plot()
	return p.left + (t-e.viewport.Start)/e.viewport.Duration*p.width
}

// yToValue maps a canvas y pixel to a percent value. The mapping is
// affine and independent of the viewport.
func (e *Editor) yToValue(y float64) float64 {
	p := e.plot()
	return 100 * (1 - (y-p.top)/p.height)
}

// valueToY is the exact algebraic inverse of yToValue.
func (e *Editor) valueToY(v float64) float64 {
	p := e.plot()
	return p.top + (1-v/100)*p.height
}

// zoomAt changes the visible duration by notches*ZoomStep while keeping
// the time under canvas x fixed at the same pixel. Positive notches zoom
// out.
func (e *Editor) zoomAt(x, notches float64) {
	p := e.plot()
	if p.width <= 0 {
		return
	}
	d := clamp(e.viewport.Duration+notches*ZoomStep,
		e.opts.minViewportDuration, e.opts.maxViewportDuration)
	if d > e.opts.totalDuration {
		d = e.opts.totalDuration
	}
	if d == e.viewport.Duration {
		return
	}
	// Solve for the start that maps the anchor time back to x.
	anchor := e.xToTime(x)
	frac := (x - p.left) / p.width
	e.viewport.Duration = d
	e.viewport.Start = clamp(anchor-frac*d, 0, e.opts.totalDuration-d)
}

// panPixels shifts the window by a pixel delta converted to time. The
// content follows the pointer: dragging right moves the window earlier.
func (e *Editor) panPixels(dx float64) {
	p := e.plot()
	if p.width <= 0 {
		return
	}
	e.panSeconds(-dx / p.width * e.viewport.Duration)
}

// panSeconds shifts the window start by dt seconds, clamped.
func (e *Editor) panSeconds(dt float64) {
	e.viewport.Start = clamp(e.viewport.Start+dt,
		0, e.opts.totalDuration-e.viewport.Duration)
}

// Wheel handles a wheel event at canvas position (x, y). One notch zooms
// the visible window by ZoomStep seconds; positive notches zoom out. The
// time under the pointer stays fixed on screen.
func (e *Editor) Wheel(x, y, notches float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.zoomAt(x, notches)
}

// ZoomBy zooms around the viewport center. It is a convenience for hosts
// without pixel coordinates (terminal shells); wheel-driven hosts should
// call Wheel so the time under the pointer is preserved instead.
func (e *Editor) ZoomBy(notches float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p := e.plot()
	e.zoomAt(p.left+p.width/2, notches)
}

// PanBy shifts the visible window by dt seconds, clamped to the timeline.
func (e *Editor) PanBy(dt float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.panSeconds(dt)
}
