package collatz

import (
	"log"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/collatz-visualization/internal/config"
)

// Counter accumulates Collatz iterations across every frame. It is owned by
// the caller and never reset.
type Counter struct {
	steps int64
}

func (c *Counter) Add(n int64) { c.steps += n }

func (c *Counter) Value() int64 { return c.steps }

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width, Height float64
}

// Frame is the complete output for one tick.
type Frame struct {
	Trajectories []Trajectory
}

// Segments returns every segment in draw order.
func (f Frame) Segments() []Segment {
	var n int
	for _, t := range f.Trajectories {
		n += len(t.Segments)
	}
	out := make([]Segment, 0, n)
	for _, t := range f.Trajectories {
		out = append(out, t.Segments...)
	}
	return out
}

// Renderer computes frames from a settings snapshot.
type Renderer struct {
	Rand   *rand.Rand
	Logger *log.Logger
	// Workers > 1 walks the trajectories of a batch in parallel.
	Workers int
}

// NewRenderer returns a serial renderer seeded with seed.
func NewRenderer(seed int64, logger *log.Logger) *Renderer {
	return &Renderer{
		Rand:    rand.New(rand.NewSource(seed)),
		Logger:  logger,
		Workers: 1,
	}
}

// Render walks the batch for s and adds the steps taken to c. Overflowing
// trajectories are cut short and logged; they never abort the frame.
func (r *Renderer) Render(s config.Snapshot, vp Viewport, c *Counter) Frame {
	if !s.Running {
		return Frame{}
	}

	seeds, err := Batch(s, r.Rand)
	if err != nil {
		r.warnf("skipping frame: %v", err)
		return Frame{}
	}

	origin := Vec{X: 0, Y: -vp.Height / 2}
	trajectories := make([]Trajectory, len(seeds))
	errs := make([]error, len(seeds))

	if r.Workers > 1 && len(seeds) > 1 {
		var g errgroup.Group
		g.SetLimit(r.Workers)
		for i, n := range seeds {
			i, n := i, n
			g.Go(func() error {
				trajectories[i], errs[i] = Walk(n, origin, s)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, n := range seeds {
			trajectories[i], errs[i] = Walk(n, origin, s)
		}
	}

	for i, t := range trajectories {
		c.Add(t.Steps())
		if errs[i] != nil {
			r.warnf("trajectory %d truncated after %d steps: %v", t.Seed, t.Steps(), errs[i])
		}
	}
	return Frame{Trajectories: trajectories}
}

func (r *Renderer) warnf(format string, args ...any) {
	if r.Logger == nil {
		return
	}
	r.Logger.Printf("warning: "+format, args...)
}
