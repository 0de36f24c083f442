package config

import (
	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is returned when a field is set outside its range.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// HSV is a stroke color. Hue is in turns, so 0 and 1 are both red.
type HSV struct {
	H, S, V float64
}

// Snapshot is an immutable copy of the settings handed to the renderer.
type Snapshot struct {
	RotationDegrees float64
	Color           HSV
	StartValue      int64
	SegmentLength   float64
	StrokeWidth     float64
	RandomStarts    bool
	Repetitions     int64
	Running         bool
}

// Validate reports the first field outside its declared range.
func (s Snapshot) Validate() error {
	if err := checkFloat("rotation", s.RotationDegrees, MinRotation, MaxRotation); err != nil {
		return err
	}
	if err := checkColor(s.Color); err != nil {
		return err
	}
	if err := checkInt("start value", s.StartValue, MinStartValue, MaxStartValue); err != nil {
		return err
	}
	if err := checkFloat("segment length", s.SegmentLength, MinSegmentLength, MaxSegmentLength); err != nil {
		return err
	}
	if err := checkFloat("stroke width", s.StrokeWidth, MinStrokeWidth, MaxStrokeWidth); err != nil {
		return err
	}
	return checkInt("repetitions", s.Repetitions, MinRepetitions, MaxRepetitions)
}

// Settings is the live configuration. The panel mutates it, the renderer
// reads it through Snapshot.
type Settings struct {
	s Snapshot
}

// Default returns settings with every field at its default value.
func Default() *Settings {
	return &Settings{s: Snapshot{
		RotationDegrees: DefaultRotation,
		Color:           HSV{H: DefaultHue, S: DefaultSaturation, V: DefaultValue},
		StartValue:      DefaultStartValue,
		SegmentLength:   DefaultSegmentLength,
		StrokeWidth:     DefaultStrokeWidth,
		RandomStarts:    DefaultRandomStarts,
		Repetitions:     DefaultRepetitions,
	}}
}

// New builds settings from s after validating it.
func New(s Snapshot) (*Settings, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Settings{s: s}, nil
}

func (c *Settings) Snapshot() Snapshot { return c.s }

func (c *Settings) Rotation() float64 { return c.s.RotationDegrees }

func (c *Settings) SetRotation(v float64) error {
	if err := checkFloat("rotation", v, MinRotation, MaxRotation); err != nil {
		return err
	}
	c.s.RotationDegrees = v
	return nil
}

func (c *Settings) Color() HSV { return c.s.Color }

func (c *Settings) SetColor(v HSV) error {
	if err := checkColor(v); err != nil {
		return err
	}
	c.s.Color = v
	return nil
}

func (c *Settings) StartValue() int64 { return c.s.StartValue }

func (c *Settings) SetStartValue(v int64) error {
	if err := checkInt("start value", v, MinStartValue, MaxStartValue); err != nil {
		return err
	}
	c.s.StartValue = v
	return nil
}

func (c *Settings) SegmentLength() float64 { return c.s.SegmentLength }

func (c *Settings) SetSegmentLength(v float64) error {
	if err := checkFloat("segment length", v, MinSegmentLength, MaxSegmentLength); err != nil {
		return err
	}
	c.s.SegmentLength = v
	return nil
}

func (c *Settings) StrokeWidth() float64 { return c.s.StrokeWidth }

func (c *Settings) SetStrokeWidth(v float64) error {
	if err := checkFloat("stroke width", v, MinStrokeWidth, MaxStrokeWidth); err != nil {
		return err
	}
	c.s.StrokeWidth = v
	return nil
}

func (c *Settings) Repetitions() int64 { return c.s.Repetitions }

func (c *Settings) SetRepetitions(v int64) error {
	if err := checkInt("repetitions", v, MinRepetitions, MaxRepetitions); err != nil {
		return err
	}
	c.s.Repetitions = v
	return nil
}

func (c *Settings) RandomStarts() bool { return c.s.RandomStarts }

func (c *Settings) ToggleRandomStarts() { c.s.RandomStarts = !c.s.RandomStarts }

func (c *Settings) Running() bool { return c.s.Running }

func (c *Settings) ToggleRunning() { c.s.Running = !c.s.Running }

func checkFloat(name string, v, lo, hi float64) error {
	// NaN fails both comparisons, so test for inclusion
	if !(v >= lo && v <= hi) {
		return errors.Wrapf(ErrInvalidConfiguration, "%s %g outside [%g, %g]", name, v, lo, hi)
	}
	return nil
}

func checkInt(name string, v, lo, hi int64) error {
	if v < lo || v > hi {
		return errors.Wrapf(ErrInvalidConfiguration, "%s %d outside [%d, %d]", name, v, lo, hi)
	}
	return nil
}

func checkColor(c HSV) error {
	for _, ch := range []struct {
		name string
		v    float64
	}{{"hue", c.H}, {"saturation", c.S}, {"value", c.V}} {
		if err := checkFloat(ch.name, ch.v, 0, 1); err != nil {
			return err
		}
	}
	return nil
}
