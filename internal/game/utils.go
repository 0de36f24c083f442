package game

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/collatz-visualization/internal/collatz"
	"github.com/iburimskiy/collatz-visualization/internal/config"
)

// hsvColor converts a stroke color (hue in turns) to an opaque color.Color.
func hsvColor(c config.HSV) color.Color {
	h := math.Mod(c.H, 1) * 360
	return colorful.Hsv(h, c.S, c.V).Clamped()
}

// colorToHSV converts a picked color back to the settings representation.
// Alpha is ignored; the stroke is always opaque.
func colorToHSV(c color.Color) config.HSV {
	r, g, b, _ := c.RGBA()
	cf := colorful.Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
	}
	h, s, v := cf.Hsv()
	return config.HSV{H: clamp01(h / 360), S: clamp01(s), V: clamp01(v)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// toScreen maps centered y-up scene coordinates to screen pixels.
func toScreen(p collatz.Vec, width, height int) (float32, float32) {
	return float32(float64(width)/2 + p.X), float32(float64(height)/2 - p.Y)
}

// sliderValue maps a cursor x position onto [lo, hi] and snaps to step.
func sliderValue(x, left, width int, lo, hi, step float64) float64 {
	if width <= 0 {
		return lo
	}
	v := lo + clamp01(float64(x-left)/float64(width))*(hi-lo)
	if step > 0 {
		v = lo + math.Round((v-lo)/step)*step
	}
	return math.Min(hi, math.Max(lo, v))
}

// sliderFraction is the filled share of a slider showing v.
func sliderFraction(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return clamp01((v - lo) / (hi - lo))
}
