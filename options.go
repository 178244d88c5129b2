package timecurve

// Option configures an Editor during creation.
// Use functional options to customize Editor behavior.
//
// Example:
//
//	// Defaults: 1800 s timeline, 30 s viewport, 20 fps
//	ed := timecurve.New()
//
//	// A two-minute timeline rendered on a wide canvas
//	ed := timecurve.New(
//		timecurve.WithTotalDuration(120),
//		timecurve.WithCanvasSize(1280, 480),
//	)
type Option func(*options)

// options holds optional configuration for Editor creation.
type options struct {
	totalDuration       float64
	viewportDuration    float64
	minViewportDuration float64
	maxViewportDuration float64
	lineColor           string
	frameRate           float64
	canvasWidth         int
	canvasHeight        int
}

// defaultOptions returns the default editor options.
func defaultOptions() options {
	return options{
		totalDuration:       DefaultTotalDuration,
		viewportDuration:    DefaultViewportDuration,
		minViewportDuration: DefaultMinViewportDuration,
		maxViewportDuration: DefaultMaxViewportDuration,
		lineColor:           DefaultLineColor,
		frameRate:           DefaultFrameRate,
		canvasWidth:         DefaultCanvasWidth,
		canvasHeight:        DefaultCanvasHeight,
	}
}

// WithTotalDuration sets the full timeline length in seconds.
// Non-positive values are ignored.
func WithTotalDuration(seconds float64) Option {
	return func(o *options) {
		if seconds > 0 {
			o.totalDuration = seconds
		}
	}
}

// WithViewportDuration sets the initially visible time window in seconds.
// The value is clamped into the viewport limits at construction.
func WithViewportDuration(seconds float64) Option {
	return func(o *options) {
		if seconds > 0 {
			o.viewportDuration = seconds
		}
	}
}

// WithViewportLimits sets the minimum and maximum visible window the zoom
// operation may reach, in seconds. Invalid pairs (min <= 0 or max < min)
// are ignored.
func WithViewportLimits(min, max float64) Option {
	return func(o *options) {
		if min <= 0 || max < min {
			return
		}
		o.minViewportDuration = min
		o.maxViewportDuration = max
	}
}

// WithLineColor sets the curve color as a hex string ("#4CAF50").
func WithLineColor(hex string) Option {
	return func(o *options) {
		if hex != "" {
			o.lineColor = hex
		}
	}
}

// WithFrameRate sets the playback timer rate in frames per second.
// Non-positive values are ignored.
func WithFrameRate(fps float64) Option {
	return func(o *options) {
		if fps > 0 {
			o.frameRate = fps
		}
	}
}

// WithCanvasSize sets the canvas dimensions in pixels. The plotting
// rectangle is the canvas minus the fixed margins. Dimensions too small to
// leave a positive plotting area are ignored.
func WithCanvasSize(width, height int) Option {
	return func(o *options) {
		if float64(width) <= marginLeft+marginRight || float64(height) <= marginTop+marginBottom {
			return
		}
		o.canvasWidth = width
		o.canvasHeight = height
	}
}
