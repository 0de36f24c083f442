package config

import "time"

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Collatz Conjecture Visualizer"

	// Panel geometry
	PanelX       = 10
	PanelY       = 10
	PanelWidth   = 240
	PanelPadding = 8
	RowHeight    = 18
	SliderHeight = 12
	ButtonHeight = 22
	SwatchSize   = 16

	// Slider bounds
	MinRotation      = 0.0
	MaxRotation      = 360.0
	MinStartValue    = 1
	MaxStartValue    = 10_000_000
	MinSegmentLength = 1.0
	MaxSegmentLength = 100.0
	MinStrokeWidth   = 1.0
	MaxStrokeWidth   = 10.0
	MinRepetitions   = 1
	MaxRepetitions   = 100

	// Defaults
	DefaultRotation      = 10.0
	DefaultHue           = 0.0
	DefaultSaturation    = 1.0
	DefaultValue         = 0.5
	DefaultStartValue    = 10
	DefaultSegmentLength = 20.0
	DefaultStrokeWidth   = 1.0
	DefaultRandomStarts  = true
	DefaultRepetitions   = 10

	// Random starts are drawn from [start, start*RandomSpan)
	RandomSpan = 100

	// Sonification
	SampleRate   = 44100
	NoteDuration = 40 * time.Millisecond
	NoteQueue    = 64
	EvenToneHz   = 220.0
	OddToneHz    = 330.0
	ToneVolume   = 0.2
)
