package timecurve

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Scene bundles one curve, its markers, and editor settings into a single
// YAML-serializable document, so a whole editing session can live in one
// file. The engine's own blobs (Data, MarkerData) stay the plain JSON
// shapes hosts exchange at runtime; Scene is the at-rest form used by
// command-line hosts.
type Scene struct {
	Points   []PointData   `yaml:"points"`
	Markers  []float64     `yaml:"markers,omitempty"`
	Settings SceneSettings `yaml:"settings,omitempty"`
}

// SceneSettings carries the editor options a scene may override. Zero
// values mean "use the default".
type SceneSettings struct {
	TotalDuration    float64 `yaml:"totalDuration,omitempty"`
	ViewportDuration float64 `yaml:"viewportDuration,omitempty"`
	LineColor        string  `yaml:"lineColor,omitempty"`
	FrameRate        float64 `yaml:"frameRate,omitempty"`
	Width            int     `yaml:"width,omitempty"`
	Height           int     `yaml:"height,omitempty"`
}

// ReadScene reads a scene from a YAML file.
func ReadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, err
	}

	return &scene, nil
}

// WriteScene writes a scene to a YAML file.
func WriteScene(scene *Scene, path string) error {
	data, err := yaml.Marshal(scene)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// NewFromScene creates an editor configured by the scene and loads its
// curve and markers. Options derived from the scene settings come first,
// so explicit opts can override them.
func NewFromScene(scene *Scene, opts ...Option) *Editor {
	base := []Option{
		WithTotalDuration(scene.Settings.TotalDuration),
		WithViewportDuration(scene.Settings.ViewportDuration),
		WithLineColor(scene.Settings.LineColor),
		WithFrameRate(scene.Settings.FrameRate),
		WithCanvasSize(scene.Settings.Width, scene.Settings.Height),
	}
	ed := New(append(base, opts...)...)

	if len(scene.Points) > 0 {
		ed.ImportData(&Data{Points: scene.Points})
	}
	if len(scene.Markers) > 0 {
		ed.ImportMarkers(&MarkerData{Markers: scene.Markers})
	}
	return ed
}

// SceneFrom captures the editor's current curve, markers and settings as
// a scene document.
func SceneFrom(ed *Editor) *Scene {
	w, h := ed.CanvasSize()
	return &Scene{
		Points:  ed.ExportData().Points,
		Markers: ed.ExportMarkers().Markers,
		Settings: SceneSettings{
			TotalDuration: ed.TotalDuration(),
			LineColor:     ed.opts.lineColor,
			FrameRate:     ed.opts.frameRate,
			Width:         w,
			Height:        h,
		},
	}
}
