package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/collatz-visualization/internal/config"
)

type widgetKind int

const (
	kindSlider widgetKind = iota
	kindSwatch
	kindCheckbox
	kindButton
	kindLabel
)

const (
	titleHeight  = 20
	inlineLabelW = 16
)

var (
	labelFace = text.NewGoXFace(basicfont.Face7x13)

	panelBg      = color.RGBA{R: 20, G: 25, B: 35, A: 220}
	panelBorder  = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	titleBg      = color.RGBA{R: 40, G: 50, B: 70, A: 255}
	trackColor   = color.RGBA{R: 45, G: 52, B: 68, A: 255}
	fillColor    = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	hoverColor   = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	textColor    = color.RGBA{R: 220, G: 225, B: 235, A: 255}
	pressedColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
)

// widget is one row of the settings panel. Sliders read and write the
// settings through get and set.
type widget struct {
	kind     widgetKind
	label    string
	labelPos image.Point
	rect     image.Rectangle

	min, max float64
	integer  bool
	inline   bool
	nudge    float64
	format   string
	get      func(*config.Settings) float64
	set      func(*config.Settings, float64) error
}

// valueAt maps a cursor x onto the slider range, snapping to whole numbers for integer fields.
func (w *widget) valueAt(x int) float64 {
	snap := 0.0
	if w.integer {
		snap = 1
	}
	return sliderValue(x, w.rect.Min.X, w.rect.Dx(), w.min, w.max, snap)
}

type panel struct {
	x, y, height int
	cursor       int
	widgets      []*widget
}

// newPanel lays out the settings panel with its top-left corner at (x, y).
func newPanel(x, y int) *panel {
	p := &panel{x: x, y: y, cursor: y + titleHeight + config.PanelPadding}

	p.addSlider("Rotation:", config.MinRotation, config.MaxRotation, false, 1, "%.1f",
		(*config.Settings).Rotation, (*config.Settings).SetRotation)

	p.addSwatch("Color Picker:")
	p.addInlineSlider("H", 0, 1, 0.01, "%.2f",
		func(s *config.Settings) float64 { return s.Color().H },
		func(s *config.Settings, v float64) error { c := s.Color(); c.H = v; return s.SetColor(c) })
	p.addInlineSlider("S", 0, 1, 0.01, "%.2f",
		func(s *config.Settings) float64 { return s.Color().S },
		func(s *config.Settings, v float64) error { c := s.Color(); c.S = v; return s.SetColor(c) })
	p.addInlineSlider("V", 0, 1, 0.01, "%.2f",
		func(s *config.Settings) float64 { return s.Color().V },
		func(s *config.Settings, v float64) error { c := s.Color(); c.V = v; return s.SetColor(c) })

	p.addSlider("Starting number:", config.MinStartValue, config.MaxStartValue, true, 1, "%.0f",
		func(s *config.Settings) float64 { return float64(s.StartValue()) },
		func(s *config.Settings, v float64) error { return s.SetStartValue(int64(v)) })
	p.addSlider("Line length:", config.MinSegmentLength, config.MaxSegmentLength, false, 1, "%.1f",
		(*config.Settings).SegmentLength, (*config.Settings).SetSegmentLength)
	p.addSlider("Line width:", config.MinStrokeWidth, config.MaxStrokeWidth, false, 0.5, "%.1f",
		(*config.Settings).StrokeWidth, (*config.Settings).SetStrokeWidth)

	p.addRow(kindCheckbox, "Random values", config.SwatchSize)

	p.addSlider("Reps:", config.MinRepetitions, config.MaxRepetitions, true, 1, "%.0f",
		func(s *config.Settings) float64 { return float64(s.Repetitions()) },
		func(s *config.Settings, v float64) error { return s.SetRepetitions(int64(v)) })

	p.addRow(kindButton, "", config.ButtonHeight)
	p.addRow(kindLabel, "Calculations Completed: ", config.RowHeight)

	p.height = p.cursor - y
	return p
}

func (p *panel) left() int  { return p.x + config.PanelPadding }
func (p *panel) right() int { return p.x + config.PanelWidth - config.PanelPadding }

func (p *panel) addSlider(label string, lo, hi float64, integer bool, nudge float64, format string,
	get func(*config.Settings) float64, set func(*config.Settings, float64) error) {
	w := &widget{
		kind: kindSlider, label: label, labelPos: image.Pt(p.left(), p.cursor),
		min: lo, max: hi, integer: integer, nudge: nudge, format: format, get: get, set: set,
	}
	p.cursor += config.RowHeight
	w.rect = image.Rect(p.left(), p.cursor, p.right(), p.cursor+config.SliderHeight)
	p.cursor += config.SliderHeight + config.PanelPadding
	p.widgets = append(p.widgets, w)
}

func (p *panel) addInlineSlider(label string, lo, hi, nudge float64, format string,
	get func(*config.Settings) float64, set func(*config.Settings, float64) error) {
	w := &widget{
		kind: kindSlider, label: label, labelPos: image.Pt(p.left(), p.cursor), inline: true,
		min: lo, max: hi, nudge: nudge, format: format, get: get, set: set,
	}
	top := p.cursor + (config.RowHeight-config.SliderHeight)/2
	w.rect = image.Rect(p.left()+inlineLabelW, top, p.right(), top+config.SliderHeight)
	p.cursor += config.RowHeight
	p.widgets = append(p.widgets, w)
}

func (p *panel) addSwatch(label string) {
	w := &widget{kind: kindSwatch, label: label, labelPos: image.Pt(p.left(), p.cursor)}
	p.cursor += config.RowHeight
	w.rect = image.Rect(p.left(), p.cursor, p.left()+3*config.SwatchSize, p.cursor+config.SwatchSize)
	p.cursor += config.SwatchSize + config.PanelPadding/2
	p.widgets = append(p.widgets, w)
}

func (p *panel) addRow(kind widgetKind, label string, height int) {
	w := &widget{kind: kind, label: label, labelPos: image.Pt(p.left(), p.cursor)}
	w.rect = image.Rect(p.left(), p.cursor, p.right(), p.cursor+height)
	p.cursor += height + config.PanelPadding
	p.widgets = append(p.widgets, w)
}

// hit returns the index of the interactive widget under pt, or -1.
func (p *panel) hit(pt image.Point) int {
	for i, w := range p.widgets {
		if w.kind != kindLabel && pt.In(w.rect) {
			return i
		}
	}
	return -1
}

func (p *panel) bounds() image.Rectangle {
	return image.Rect(p.x, p.y, p.x+config.PanelWidth, p.y+p.height)
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	p := g.panel
	b := p.bounds()
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), panelBg, false)
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), titleHeight, titleBg, false)
	vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 1, panelBorder, false)
	drawLabel(screen, "Settings", p.left(), p.y+3)

	for i, w := range p.widgets {
		hovered := i == g.hovered || i == g.active
		switch w.kind {
		case kindSlider:
			g.drawSlider(screen, w, hovered)
		case kindSwatch:
			drawLabel(screen, w.label, w.labelPos.X, w.labelPos.Y)
			fillRect(screen, w.rect, hsvColor(g.settings.Color()))
			border := panelBorder
			if hovered {
				border = hoverColor
			}
			strokeRect(screen, w.rect, border)
			drawLabel(screen, "click for dialog", w.rect.Max.X+config.PanelPadding, w.rect.Min.Y+1)
		case kindCheckbox:
			box := image.Rect(w.rect.Min.X, w.rect.Min.Y, w.rect.Min.X+config.SwatchSize, w.rect.Min.Y+config.SwatchSize)
			if g.settings.RandomStarts() {
				fillRect(screen, box.Inset(3), fillColor)
			}
			border := panelBorder
			if hovered {
				border = hoverColor
			}
			strokeRect(screen, box, border)
			drawLabel(screen, w.label, box.Max.X+config.PanelPadding, w.rect.Min.Y+1)
		case kindButton:
			bg := fillColor
			if i == g.pressed && hovered {
				bg = pressedColor
			} else if hovered {
				bg = hoverColor
			}
			fillRect(screen, w.rect, bg)
			strokeRect(screen, w.rect, panelBorder)
			label := runLabel(g.settings.Running())
			tw, _ := text.Measure(label, labelFace, 0)
			drawLabel(screen, label, w.rect.Min.X+(w.rect.Dx()-int(tw))/2, w.rect.Min.Y+(w.rect.Dy()-13)/2)
		case kindLabel:
			drawLabel(screen, fmt.Sprintf("%s%d", w.label, g.counter.Value()), w.labelPos.X, w.labelPos.Y)
		}
	}
}

func (g *Game) drawSlider(screen *ebiten.Image, w *widget, hovered bool) {
	v := w.get(g.settings)
	drawLabel(screen, w.label, w.labelPos.X, w.labelPos.Y)

	if !w.inline {
		value := fmt.Sprintf(w.format, v)
		tw, _ := text.Measure(value, labelFace, 0)
		drawLabel(screen, value, w.rect.Max.X-int(tw), w.labelPos.Y)
	}

	fillRect(screen, w.rect, trackColor)
	filled := w.rect
	filled.Max.X = w.rect.Min.X + int(sliderFraction(v, w.min, w.max)*float64(w.rect.Dx()))
	fillRect(screen, filled, fillColor)

	handle := image.Rect(filled.Max.X-2, w.rect.Min.Y-2, filled.Max.X+2, w.rect.Max.Y+2)
	hc := textColor
	if hovered {
		hc = hoverColor
	}
	fillRect(screen, handle, hc)
}

func runLabel(running bool) string {
	if running {
		return "Stop"
	}
	return "Start"
}

func drawLabel(screen *ebiten.Image, s string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, s, labelFace, op)
}

func fillRect(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func strokeRect(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
}
