package timecurve

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
)

// The renderer is a strict leaf: it reads model and viewport state and
// paints, never mutating either.

// Chrome colors. The curve color itself comes from WithLineColor.
var (
	backgroundColor = gg.Hex("#1E1E1E")
	gridColor       = gg.Hex("#2E2E2E")
	borderColor     = gg.Hex("#4A4A4A")
	labelColor      = gg.Hex("#9E9E9E")
	pointFillColor  = gg.Hex("#FFFFFF")
	markerColor     = gg.Hex("#FFC107")
	playheadColor   = gg.Hex("#E53935")
)

// Draw paints the current state into the editor's canvas. The canvas is
// created on first use with the configured dimensions.
func (e *Editor) Draw() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dc == nil {
		e.dc = gg.NewContext(e.opts.canvasWidth, e.opts.canvasHeight)
	}
	if err := e.render(e.dc); err != nil {
		Logger().Warn("render failed", "error", err)
		return err
	}
	return nil
}

// Image returns the rendered canvas, drawing first if needed.
func (e *Editor) Image() (image.Image, error) {
	if err := e.Draw(); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dc.Image(), nil
}

// EncodePNG draws and writes the canvas as PNG.
func (e *Editor) EncodePNG(w io.Writer) error {
	if err := e.Draw(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dc.EncodePNG(w)
}

// SavePNG draws and writes the canvas to a PNG file.
func (e *Editor) SavePNG(path string) error {
	if err := e.Draw(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dc.SavePNG(path)
}

// LoadFontFace enables axis labels by loading a TTF font at the given
// point size. Without a font the chart renders unlabeled.
func (e *Editor) LoadFontFace(path string, points float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dc == nil {
		e.dc = gg.NewContext(e.opts.canvasWidth, e.opts.canvasHeight)
	}
	return e.dc.LoadFontFace(path, points)
}

// render paints one full frame. Caller holds e.mu.
func (e *Editor) render(dc *gg.Context) error {
	plot := e.plot()
	var errs []error

	dc.ClearWithColor(backgroundColor)
	errs = append(errs, e.renderGrid(dc, plot))

	dc.ClipRect(plot.left, plot.top, plot.width, plot.height)
	errs = append(errs,
		e.renderCurve(dc, plot),
		e.renderMarkers(dc, plot),
		e.renderPoints(dc))
	dc.ResetClip()

	errs = append(errs, e.renderPlayhead(dc, plot))

	// Plot border, above the clipped content.
	dc.SetColor(borderColor.Color())
	dc.SetLineWidth(1)
	dc.DrawRectangle(plot.left, plot.top, plot.width, plot.height)
	errs = append(errs, dc.Stroke())

	return errors.Join(errs...)
}

// gridTimeStep picks the vertical grid spacing for the visible window.
func gridTimeStep(visible float64) float64 {
	switch {
	case visible <= 15:
		return 1
	case visible <= 45:
		return 5
	default:
		return 10
	}
}

func (e *Editor) renderGrid(dc *gg.Context, plot plotRect) error {
	var errs []error
	dc.SetColor(gridColor.Color())
	dc.SetLineWidth(1)

	step := gridTimeStep(e.viewport.Duration)
	first := float64(int(e.viewport.Start/step)) * step
	if first < e.viewport.Start {
		first += step
	}
	for t := first; t <= e.viewport.End(); t += step {
		x := e.timeToX(t)
		dc.DrawLine(x, plot.top, x, plot.top+plot.height)
	}
	for v := 0.0; v <= 100; v += 25 {
		y := e.valueToY(v)
		dc.DrawLine(plot.left, y, plot.left+plot.width, y)
	}
	errs = append(errs, dc.Stroke())

	// Labels only when the host loaded a font.
	if dc.Font() != nil {
		dc.SetColor(labelColor.Color())
		for t := first; t <= e.viewport.End(); t += step {
			dc.DrawStringAnchored(formatSeconds(t), e.timeToX(t), plot.top+plot.height+4, 0.5, 1)
		}
		for v := 0.0; v <= 100; v += 25 {
			dc.DrawStringAnchored(fmt.Sprintf("%.0f", v), plot.left-6, e.valueToY(v), 1, 0.5)
		}
	}
	return errors.Join(errs...)
}

// renderCurve strokes the curve across the visible window. Bezier
// segments use the same collapsed handles as ValueAt: the screen cubic
// through ((x0,y0), (x0+w/3,y0), (x0+2w/3,y1), (x1,y1)) has a linear
// x(t), so its pixels line up with the evaluated values exactly.
func (e *Editor) renderCurve(dc *gg.Context, plot plotRect) error {
	first := e.points[0]
	last := e.points[len(e.points)-1]

	dc.SetHexColor(e.opts.lineColor)
	dc.SetLineWidth(2)

	dc.MoveTo(e.timeToX(first.Time), e.valueToY(first.Value))
	for i := 0; i < len(e.points)-1; i++ {
		p0, p1 := e.points[i], e.points[i+1]
		x0, y0 := e.timeToX(p0.Time), e.valueToY(p0.Value)
		x1, y1 := e.timeToX(p1.Time), e.valueToY(p1.Value)
		if p0.Kind == Bezier || p1.Kind == Bezier {
			w := x1 - x0
			dc.CubicTo(x0+w/3, y0, x0+2*w/3, y1, x1, y1)
		} else {
			dc.LineTo(x1, y1)
		}
	}
	// Past the last point the value holds, like ValueAt.
	if last.Time < e.viewport.End() {
		dc.LineTo(plot.left+plot.width, e.valueToY(last.Value))
	}
	return dc.Stroke()
}

func (e *Editor) renderPoints(dc *gg.Context) error {
	var errs []error
	for _, p := range e.points {
		x, y := e.timeToX(p.Time), e.valueToY(p.Value)
		dc.SetColor(pointFillColor.Color())
		dc.DrawCircle(x, y, PointRadius)
		errs = append(errs, dc.Fill())

		dc.SetHexColor(e.opts.lineColor)
		dc.SetLineWidth(1.5)
		dc.DrawCircle(x, y, PointRadius)
		errs = append(errs, dc.Stroke())
	}
	return errors.Join(errs...)
}

func (e *Editor) renderMarkers(dc *gg.Context, plot plotRect) error {
	if len(e.markers) == 0 {
		return nil
	}
	dc.SetColor(markerColor.Color())
	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	for _, m := range e.markers {
		if !e.viewport.Contains(m) {
			continue
		}
		x := e.timeToX(m)
		dc.DrawLine(x, plot.top, x, plot.top+plot.height)
	}
	err := dc.Stroke()
	dc.ClearDash()
	return err
}

func (e *Editor) renderPlayhead(dc *gg.Context, plot plotRect) error {
	if !e.viewport.Contains(e.playheadTime) {
		return nil
	}
	var errs []error
	x := e.timeToX(e.playheadTime)

	dc.SetColor(playheadColor.Color())
	dc.SetLineWidth(1)
	dc.DrawLine(x, plot.top, x, plot.top+plot.height)
	errs = append(errs, dc.Stroke())

	// Grab handle in the top margin band.
	half := PlayheadHandleSize / 2
	dc.MoveTo(x-half, plot.top-PlayheadHandleSize)
	dc.LineTo(x+half, plot.top-PlayheadHandleSize)
	dc.LineTo(x, plot.top)
	dc.ClosePath()
	errs = append(errs, dc.Fill())

	return errors.Join(errs...)
}

// formatSeconds renders a time tick label as m:ss.
func formatSeconds(t float64) string {
	total := int(t + 0.5)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
