package main

import "flag"
import "fmt"
import "log"
import "image"
import "image/color"
import "math"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/ebitenutil"
import "github.com/hajimehoshi/ebiten/v2/inpututil"
import "github.com/hajimehoshi/ebiten/v2/vector"

import "github.com/tinne26/textdust"
import "github.com/tinne26/textdust/internal/settings"

// Adapts an *ebiten.Image to the textdust.Surface interface.
type screenSurface struct { image *ebiten.Image }

func (self screenSurface) Bounds() image.Rectangle { return self.image.Bounds() }

func (self screenSurface) ClearRect(rect image.Rectangle) {
	rect = rect.Intersect(self.image.Bounds())
	if rect.Empty() { return }
	self.image.SubImage(rect).(*ebiten.Image).Clear()
}

func (self screenSurface) FillRect(x, y, width, height float64, clr color.Color) {
	fx, fy := float32(math.Floor(x)), float32(math.Floor(y))
	vector.DrawFilledRect(self.image, fx, fy, float32(width), float32(height), clr, false)
}

// ---- Ebitengine's Game interface implementation ----

type Game struct {
	field *textdust.Field
	input *textdust.TextInput
	runes []rune
	width, height int
}

func (self *Game) Layout(winWidth int, winHeight int) (int, int) {
	if winWidth != self.width || winHeight != self.height {
		self.width, self.height = winWidth, winHeight
		self.field.Resize(winWidth, winHeight)
	}
	return winWidth, winHeight
}

func (self *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) { return ebiten.Termination }

	// text input
	self.runes = ebiten.AppendInputChars(self.runes[ : 0])
	for _, r := range self.runes {
		value, emit := self.input.Type(r)
		if emit { self.field.KeyUp(r, value) }
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		value, changed := self.input.Backspace()
		if changed { self.field.SetText(value) }
	}

	// pointer
	x, y := ebiten.CursorPosition()
	if image.Pt(x, y).In(image.Rect(0, 0, self.width, self.height)) {
		self.field.SetPointer(float64(x), float64(y))
	} else {
		self.field.ClearPointer()
	}

	self.field.Update()
	return nil
}

func (self *Game) Draw(screen *ebiten.Image) {
	screen.Clear()
	self.field.Draw(screenSurface{ screen })

	info := fmt.Sprintf(
		"%s_\n%d particles, %.0f FPS",
		self.input.String(), self.field.Batch().Len(), ebiten.ActualFPS(),
	)
	ebitenutil.DebugPrint(screen, info)
}

// Like inpututil.IsKeyJustPressed, but repeating while held.
func repeatingKeyPressed(key ebiten.Key) bool {
	const delay, interval = 30, 3
	ticks := inpututil.KeyPressDuration(key)
	if ticks == 1 { return true }
	return ticks >= delay && (ticks - delay) % interval == 0
}

// ---- main function ----

func main() {
	config := textdust.DefaultConfig()
	flagSettings := settings.Bind(flag.CommandLine, &config, "Hello How are you")
	width  := flag.Int("width", 1280, "initial window width")
	height := flag.Int("height", 720, "initial window height")
	flag.Parse()
	err := flagSettings.Apply()
	if err != nil { log.Fatal(err) }

	field, err := textdust.NewField(config, *width, *height)
	if err != nil { log.Fatal(err) }
	field.SetText(flagSettings.Text)

	ebiten.SetWindowTitle("textdust")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	game := &Game{
		field: field,
		input: textdust.NewTextInput(flagSettings.Text),
		width: *width, height: *height,
	}
	err = ebiten.RunGame(game)
	if err != nil { log.Fatal(err) }
}
