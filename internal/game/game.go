// Package game hosts the scene in an ebiten window: it turns key presses and
// button clicks into commands, keeps the window size and fullscreen state in
// sync, and renders the scene onto the screen.
package game

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/pulse-heart/internal/config"
	"github.com/iburimskiy/pulse-heart/internal/scene"
)

// Game implements ebiten.Game.
type Game struct {
	log    *slog.Logger
	scene  *scene.Orchestrator
	canvas *canvas
	upload scene.LoadFunc

	width, height int
	keys          []ebiten.Key

	// button state
	buttonHovered bool
	buttonPressed bool
}

// New wraps s for ebiten on a width x height window, the size s was built
// for. The upload button opens a zenity file dialog.
func New(s *scene.Orchestrator, width, height int, log *slog.Logger) *Game {
	return &Game{
		log:    log,
		scene:  s,
		upload: pickPNG(log),
		width:  width,
		height: height,
	}
}

// Size is the canvas size the next Update lays the scene out on.
func (g *Game) Size() (int, int) { return g.width, g.height }

func (g *Game) Update() error {
	// The window manager may have left fullscreen on its own.
	g.scene.SetFullscreen(ebiten.IsFullscreen())

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.scene.HandleCommand(commandForKey(k))
	}

	if g.scene.ShowInstructions() {
		g.updateButton()
	} else {
		g.buttonHovered, g.buttonPressed = false, false
	}

	if want := g.scene.Fullscreen(); want != ebiten.IsFullscreen() {
		g.log.Debug("fullscreen", "on", want)
		ebiten.SetFullscreen(want)
	}

	g.scene.Update(float64(g.width), float64(g.height))
	return nil
}

func (g *Game) updateButton() {
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			if err := g.scene.Upload(g.upload); err != nil {
				g.log.Debug("upload ignored", "error", err)
			}
		}
		g.buttonPressed = false
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = newCanvas()
	}
	g.canvas.begin(screen)
	g.scene.Draw(g.canvas)

	if g.scene.ShowInstructions() {
		g.drawButton(screen)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	switch {
	case g.scene.Loading():
		bgColor = color.RGBA{R: 50, G: 50, B: 60, A: 255}
	case g.buttonPressed:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case g.buttonHovered:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Upload PNG"
	if g.scene.Loading() {
		text = "Loading..."
	}
	textWidth := len(text) * 6 // debug font glyph width
	ebitenutil.DebugPrintAt(screen, text, config.ButtonX+(config.ButtonWidth-textWidth)/2, config.ButtonY+(config.ButtonHeight-16)/2)
}

// Layout follows the window so the canvas always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.log.Debug("canvas resized", "width", outsideWidth, "height", outsideHeight)
	}
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
