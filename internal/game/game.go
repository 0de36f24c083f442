// Package game runs the visualizer window: it feeds panel input into the
// settings, renders a frame of trajectories per tick and draws it.
package game

import (
	"errors"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/collatz-visualization/internal/collatz"
	"github.com/iburimskiy/collatz-visualization/internal/config"
	"github.com/iburimskiy/collatz-visualization/internal/sonify"
)

// Options carries the collaborators of a Game. Nil fields get defaults.
type Options struct {
	Renderer *collatz.Renderer
	Voice    *sonify.Voice
	Logger   *log.Logger
	// PickColor opens a color dialog. Defaults to the native zenity picker.
	PickColor func(config.HSV) (config.HSV, error)
}

type Game struct {
	settings *config.Settings
	renderer *collatz.Renderer
	counter  collatz.Counter
	frame    collatz.Frame
	voice    *sonify.Voice
	logger   *log.Logger

	pickColor func(config.HSV) (config.HSV, error)

	// panel state
	panel   *panel
	hovered int
	pressed int
	active  int

	width, height int
	lastErr       error
}

func NewGame(settings *config.Settings, opts Options) *Game {
	g := &Game{
		settings:  settings,
		renderer:  opts.Renderer,
		voice:     opts.Voice,
		logger:    opts.Logger,
		pickColor: opts.PickColor,
		panel:     newPanel(config.PanelX, config.PanelY),
		hovered:   -1,
		pressed:   -1,
		active:    -1,
		width:     config.WindowWidth,
		height:    config.WindowHeight,
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	if g.renderer == nil {
		g.renderer = collatz.NewRenderer(0, g.logger)
	}
	if g.pickColor == nil {
		g.pickColor = selectColorDialog
	}
	return g
}

// Steps returns the number of Collatz iterations computed so far.
func (g *Game) Steps() int64 { return g.counter.Value() }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggleRunning()
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.updatePanel(mouseX, mouseY)

	g.tick()
	return nil
}

// tick renders the frame for the current settings.
func (g *Game) tick() {
	vp := collatz.Viewport{Width: float64(g.width), Height: float64(g.height)}
	g.frame = g.renderer.Render(g.settings.Snapshot(), vp, &g.counter)

	if g.voice != nil && len(g.frame.Trajectories) > 0 {
		first := g.frame.Trajectories[0]
		parities := make([]bool, len(first.Segments))
		for i, s := range first.Segments {
			parities[i] = s.Odd
		}
		g.voice.Enqueue(parities...)
	}
}

func (g *Game) updatePanel(mouseX, mouseY int) {
	g.hovered = g.panel.hit(image.Pt(mouseX, mouseY))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.hovered >= 0 {
		g.pressed = g.hovered
		if g.panel.widgets[g.hovered].kind == kindSlider {
			g.active = g.hovered
		}
	}

	if g.active >= 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		w := g.panel.widgets[g.active]
		g.setSlider(w, w.valueAt(mouseX))
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressed >= 0 && g.pressed == g.hovered {
			g.activate(g.pressed)
		}
		g.pressed, g.active = -1, -1
	}

	if g.hovered >= 0 && g.panel.widgets[g.hovered].kind == kindSlider {
		w := g.panel.widgets[g.hovered]
		if repeating(ebiten.KeyArrowRight) {
			g.setSlider(w, w.get(g.settings)+w.nudge)
		}
		if repeating(ebiten.KeyArrowLeft) {
			g.setSlider(w, w.get(g.settings)-w.nudge)
		}
	}
}

// activate handles a completed click on widget i.
func (g *Game) activate(i int) {
	switch g.panel.widgets[i].kind {
	case kindCheckbox:
		g.settings.ToggleRandomStarts()
	case kindButton:
		g.toggleRunning()
	case kindSwatch:
		g.pickStrokeColor()
	}
}

// setSlider clamps v into the widget range before storing it.
func (g *Game) setSlider(w *widget, v float64) {
	if v < w.min {
		v = w.min
	}
	if v > w.max {
		v = w.max
	}
	if err := w.set(g.settings, v); err != nil {
		g.lastErr = err
		g.logger.Printf("warning: %v", err)
	}
}

func (g *Game) toggleRunning() {
	g.settings.ToggleRunning()
	if g.settings.Running() {
		g.logger.Printf("started at %d after %d steps", g.settings.StartValue(), g.counter.Value())
	} else {
		g.logger.Printf("stopped after %d steps", g.counter.Value())
	}
}

func (g *Game) pickStrokeColor() {
	c, err := g.pickColor(g.settings.Color())
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		g.lastErr = err
		return
	}
	if err := g.settings.SetColor(c); err != nil {
		g.lastErr = err
		return
	}
	g.logger.Printf("stroke color set to h=%.2f s=%.2f v=%.2f", c.H, c.S, c.V)
}

func selectColorDialog(current config.HSV) (config.HSV, error) {
	picked, err := zenity.SelectColor(
		zenity.Title("Stroke color"),
		zenity.Color(hsvColor(current)),
	)
	if err != nil {
		return current, err
	}
	return colorToHSV(picked), nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.drawTrajectories(screen)
	g.drawPanel(screen)

	status := "Space: start/stop, Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.height-20)
}

func (g *Game) drawTrajectories(screen *ebiten.Image) {
	var (
		last config.HSV
		clr  color.Color
	)
	for _, tr := range g.frame.Trajectories {
		for _, s := range tr.Segments {
			if clr == nil || s.Color != last {
				last, clr = s.Color, hsvColor(s.Color)
			}
			x0, y0 := toScreen(s.Start, g.width, g.height)
			x1, y1 := toScreen(s.End, g.width, g.height)
			vector.StrokeLine(screen, x0, y0, x1, y1, float32(s.Width), clr, true)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// repeating reports a key press and then auto-repeats while it is held.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= 30 && d%4 == 0)
}
