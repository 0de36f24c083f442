package collatz

import (
	"bytes"
	"log"
	"reflect"
	"strings"
	"testing"
)

var viewport = Viewport{Width: 800, Height: 600}

func TestRenderStoppedIsEmpty(t *testing.T) {
	r := NewRenderer(1, nil)
	var c Counter

	for _, random := range []bool{false, true} {
		s := sequential(10, 100)
		s.RandomStarts = random
		s.Running = false

		f := r.Render(s, viewport, &c)
		if len(f.Segments()) != 0 {
			t.Errorf("random=%v: expected no segments when stopped, got %d", random, len(f.Segments()))
		}
	}
	if c.Value() != 0 {
		t.Errorf("Expected counter to stay 0, got %d", c.Value())
	}
}

func TestRenderCountsSteps(t *testing.T) {
	r := NewRenderer(1, nil)
	var c Counter

	f := r.Render(sequential(10, 1), viewport, &c)
	if got := len(f.Segments()); got != 5 {
		t.Errorf("Expected 5 segments, got %d", got)
	}
	if c.Value() != 5 {
		t.Errorf("Expected counter 5, got %d", c.Value())
	}

	r.Render(sequential(10, 1), viewport, &c)
	if c.Value() != 10 {
		t.Errorf("Expected counter to keep growing to 10, got %d", c.Value())
	}
}

func TestRenderStartsAtBottomCenter(t *testing.T) {
	r := NewRenderer(1, nil)
	var c Counter

	f := r.Render(sequential(10, 3), viewport, &c)
	for _, tr := range f.Trajectories {
		first := tr.Segments[0].Start
		if first.X != 0 || first.Y != -viewport.Height/2 {
			t.Errorf("trajectory %d: expected start (0, %v), got %+v", tr.Seed, -viewport.Height/2, first)
		}
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	r := NewRenderer(1, nil)
	var c Counter
	s := sequential(27, 20)

	a := r.Render(s, viewport, &c)
	mid := c.Value()
	b := r.Render(s, viewport, &c)

	if !reflect.DeepEqual(a.Segments(), b.Segments()) {
		t.Error("Expected identical geometry for identical input")
	}
	if c.Value() != 2*mid {
		t.Errorf("Expected counter %d, got %d", 2*mid, c.Value())
	}
}

func TestRenderWorkersMatchSerial(t *testing.T) {
	s := sequential(1000, 50)

	var serialCount, parallelCount Counter
	serial := NewRenderer(1, nil).Render(s, viewport, &serialCount)

	r := NewRenderer(1, nil)
	r.Workers = 4
	parallel := r.Render(s, viewport, &parallelCount)

	if !reflect.DeepEqual(serial, parallel) {
		t.Error("Expected parallel frame to equal serial frame")
	}
	if serialCount.Value() != parallelCount.Value() {
		t.Errorf("Expected counters to match, got %d and %d", serialCount.Value(), parallelCount.Value())
	}
}

func TestRenderOverflowIsPerTrajectory(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(1, log.New(&buf, "", 0))
	var c Counter

	f := r.Render(sequential(overflowAfterOne, 2), viewport, &c)

	if len(f.Trajectories) != 2 {
		t.Fatalf("Expected 2 trajectories, got %d", len(f.Trajectories))
	}
	if f.Trajectories[0].Steps() != 1 {
		t.Errorf("Expected first trajectory to keep 1 segment, got %d", f.Trajectories[0].Steps())
	}
	if f.Trajectories[1].Steps() != 0 {
		t.Errorf("Expected second trajectory to stop at once, got %d", f.Trajectories[1].Steps())
	}
	if c.Value() != 1 {
		t.Errorf("Expected counter 1, got %d", c.Value())
	}
	if got := strings.Count(buf.String(), "overflow"); got != 2 {
		t.Errorf("Expected 2 overflow warnings, got %d in %q", got, buf.String())
	}
}

func TestRenderInvalidStartLogs(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(1, log.New(&buf, "", 0))
	var c Counter

	f := r.Render(sequential(0, 5), viewport, &c)
	if len(f.Trajectories) != 0 {
		t.Errorf("Expected empty frame, got %d trajectories", len(f.Trajectories))
	}
	if buf.Len() == 0 {
		t.Error("Expected a warning for invalid start value")
	}
}
