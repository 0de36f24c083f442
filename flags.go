package main

import (
	"flag"

	"github.com/iburimskiy/collatz-visualization/internal/config"
)

// Command-line flags seeding the initial settings. The panel can change all
// of them at runtime except seed, workers and sound.
var (
	rotationFlag   = flag.Float64("rotation", config.DefaultRotation, "rotation per step in degrees (0-360)")
	startFlag      = flag.Int64("start", config.DefaultStartValue, "starting number (1-10000000)")
	lengthFlag     = flag.Float64("length", config.DefaultSegmentLength, "line length (1-100)")
	widthFlag      = flag.Float64("width", config.DefaultStrokeWidth, "line width (1-10)")
	repsFlag       = flag.Int64("reps", config.DefaultRepetitions, "trajectories per frame (1-100)")
	randomFlag     = flag.Bool("random", config.DefaultRandomStarts, "draw random starting numbers from [start, start*100)")
	hueFlag        = flag.Float64("hue", config.DefaultHue, "stroke hue in turns (0-1)")
	saturationFlag = flag.Float64("saturation", config.DefaultSaturation, "stroke saturation (0-1)")
	valueFlag      = flag.Float64("value", config.DefaultValue, "stroke value (0-1)")
	runFlag        = flag.Bool("run", false, "start animating immediately")

	// seedFlag makes random starts reproducible; 0 seeds from the clock.
	seedFlag = flag.Int64("seed", 0, "random seed for starting numbers (0 = time based)")

	// workersFlag walks the trajectories of a frame in parallel.
	workersFlag = flag.Int("workers", 1, "parallel trajectory walkers per frame")

	// soundFlag voices the step parities of the first trajectory.
	soundFlag = flag.Bool("sound", false, "play a tone per Collatz step")
)

func snapshotFromFlags() config.Snapshot {
	return config.Snapshot{
		RotationDegrees: *rotationFlag,
		Color:           config.HSV{H: *hueFlag, S: *saturationFlag, V: *valueFlag},
		StartValue:      *startFlag,
		SegmentLength:   *lengthFlag,
		StrokeWidth:     *widthFlag,
		RandomStarts:    *randomFlag,
		Repetitions:     *repsFlag,
		Running:         *runFlag,
	}
}
