// Command curverender renders an animation-curve scene to PNG.
//
// With -frames > 1 it renders a playback pass as a numbered frame
// sequence, one frame per tick at the scene's frame rate; otherwise it
// renders a single still at -time.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/robinz-labs/timecurve"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene YAML file (required)")
		outDir    = flag.String("out", "frames", "output directory")
		frames    = flag.Int("frames", 1, "number of frames to render")
		at        = flag.Float64("time", 0, "playhead time for a single still, seconds")
		fontPath  = flag.String("font", "", "TTF font for axis labels (optional)")
		fontSize  = flag.Float64("font-size", 11, "label font size in points")
	)
	flag.Parse()

	if *scenePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	scene, err := timecurve.ReadScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to read scene: %v", err)
	}

	ed := timecurve.NewFromScene(scene)
	if *fontPath != "" {
		if err := ed.LoadFontFace(*fontPath, *fontSize); err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	if *frames <= 1 {
		ed.Seek(*at)
		out := filepath.Join(*outDir, "still.png")
		if err := ed.SavePNG(out); err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
		log.Printf("Still saved to %s (t=%.2fs, value=%.2f)", out, *at, ed.ValueAt(*at))
		return
	}

	fps := scene.Settings.FrameRate
	if fps <= 0 {
		fps = timecurve.DefaultFrameRate
	}
	step := 1.0 / fps
	for i := 0; i < *frames; i++ {
		ed.Seek(float64(i) * step)
		out := filepath.Join(*outDir, fmt.Sprintf("frame_%04d.png", i))
		if err := ed.SavePNG(out); err != nil {
			log.Fatalf("Failed to render frame %d: %v", i, err)
		}
	}
	log.Printf("%d frames saved to %s (%.0f fps)", *frames, *outDir, fps)
}
