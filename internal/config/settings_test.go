package config

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := Default().Snapshot()

	if err := s.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if s.Running {
		t.Error("Expected default settings to be stopped")
	}
	if !s.RandomStarts {
		t.Error("Expected default settings to use random starts")
	}
	if s.StartValue != 10 || s.Repetitions != 10 {
		t.Errorf("Expected start 10 and reps 10, got %d and %d", s.StartValue, s.Repetitions)
	}
}

func TestSettersRejectOutOfRange(t *testing.T) {
	c := Default()

	tests := []struct {
		name string
		set  func() error
	}{
		{"rotation below", func() error { return c.SetRotation(-1) }},
		{"rotation above", func() error { return c.SetRotation(360.5) }},
		{"rotation NaN", func() error { return c.SetRotation(math.NaN()) }},
		{"start zero", func() error { return c.SetStartValue(0) }},
		{"start above", func() error { return c.SetStartValue(MaxStartValue + 1) }},
		{"length below", func() error { return c.SetSegmentLength(0.5) }},
		{"width above", func() error { return c.SetStrokeWidth(11) }},
		{"reps zero", func() error { return c.SetRepetitions(0) }},
		{"reps above", func() error { return c.SetRepetitions(101) }},
		{"hue above", func() error { return c.SetColor(HSV{H: 1.5, S: 1, V: 1}) }},
		{"value below", func() error { return c.SetColor(HSV{H: 0, S: 1, V: -0.1}) }},
	}

	before := c.Snapshot()
	for _, tt := range tests {
		err := tt.set()
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%s: expected ErrInvalidConfiguration, got %v", tt.name, err)
		}
	}
	if c.Snapshot() != before {
		t.Error("Expected rejected setters to leave settings unchanged")
	}
}

func TestSettersAcceptBounds(t *testing.T) {
	c := Default()

	if err := c.SetRotation(360); err != nil {
		t.Errorf("Expected rotation 360 to be accepted, got %v", err)
	}
	if err := c.SetStartValue(MaxStartValue); err != nil {
		t.Errorf("Expected max start value to be accepted, got %v", err)
	}
	if err := c.SetSegmentLength(1); err != nil {
		t.Errorf("Expected length 1 to be accepted, got %v", err)
	}
	if err := c.SetStrokeWidth(10); err != nil {
		t.Errorf("Expected width 10 to be accepted, got %v", err)
	}
	if err := c.SetRepetitions(100); err != nil {
		t.Errorf("Expected reps 100 to be accepted, got %v", err)
	}
	if err := c.SetColor(HSV{H: 1, S: 0, V: 1}); err != nil {
		t.Errorf("Expected color to be accepted, got %v", err)
	}

	s := c.Snapshot()
	if s.RotationDegrees != 360 || s.StartValue != MaxStartValue || s.Repetitions != 100 {
		t.Errorf("Expected setters to store values, got %+v", s)
	}
}

func TestToggles(t *testing.T) {
	c := Default()

	c.ToggleRunning()
	if !c.Running() {
		t.Error("Expected running after first toggle")
	}
	c.ToggleRunning()
	if c.Running() {
		t.Error("Expected stopped after second toggle")
	}

	random := c.RandomStarts()
	c.ToggleRandomStarts()
	if c.RandomStarts() == random {
		t.Error("Expected random starts to flip")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c := Default()
	s := c.Snapshot()

	if err := c.SetRotation(90); err != nil {
		t.Fatal(err)
	}
	if s.RotationDegrees != DefaultRotation {
		t.Errorf("Expected snapshot to keep %v, got %v", DefaultRotation, s.RotationDegrees)
	}
}

func TestNewValidates(t *testing.T) {
	s := Default().Snapshot()
	s.StartValue = 0

	if _, err := New(s); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}

	s.StartValue = 42
	c, err := New(s)
	if err != nil {
		t.Fatalf("Expected valid snapshot to build settings, got %v", err)
	}
	if c.StartValue() != 42 {
		t.Errorf("Expected start 42, got %d", c.StartValue())
	}
}
