package main

import "flag"
import "log"
import "time"
import "image/color"

import "github.com/gdamore/tcell/v2"

import "github.com/tinne26/textdust"
import "github.com/tinne26/textdust/internal/settings"

// Each terminal cell shows two vertically stacked pixels using
// the upper half block, with the top pixel as the foreground and
// the bottom one as the background.
const halfBlock = '▀'

type terminal struct {
	screen tcell.Screen
	field *textdust.Field
	input *textdust.TextInput
	canvas *textdust.Canvas
	background tcell.Color
}

// Initializes the given screen and creates a field that covers it.
// The screen is finalized if the field can't be created.
func newTerminal(screen tcell.Screen, config textdust.Config, text string) (*terminal, error) {
	err := screen.Init()
	if err != nil { return nil, err }
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	cols, rows := screen.Size()
	field, err := textdust.NewField(config, cols, rows*2)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	field.SetText(text)
	return &terminal{
		screen: screen,
		field: field,
		input: textdust.NewTextInput(text),
		canvas: textdust.NewCanvas(cols, rows*2),
		background: tcell.ColorBlack,
	}, nil
}

func (self *terminal) run(fps int) {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			select {
			case <-quit:
				return
			default:
				event := self.screen.PollEvent()
				if event == nil { return } // screen finalized
				select {
				case events <- event:
				case <-quit:
					return
				}
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(time.Second/time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case event := <-events:
			if !self.handleEvent(event) { return }
		case <-ticker.C:
			self.field.Tick(self.canvas)
			self.flush()
		}
	}
}

// Returns false when the program must exit.
func (self *terminal) handleEvent(event tcell.Event) bool {
	switch event := event.(type) {
	case *tcell.EventResize:
		cols, rows := event.Size()
		self.canvas = textdust.NewCanvas(cols, rows*2)
		self.field.Resize(cols, rows*2)
		self.screen.Sync()
	case *tcell.EventMouse:
		cols, rows := self.screen.Size()
		x, y, inside := pointerPosition(event, cols, rows)
		if inside {
			self.field.SetPointer(x, y)
		} else {
			self.field.ClearPointer()
		}
	case *tcell.EventFocus:
		if !event.Focused { self.field.ClearPointer() }
	case *tcell.EventKey:
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			value, changed := self.input.Backspace()
			if changed { self.field.SetText(value) }
		case tcell.KeyRune:
			value, emit := self.input.Type(event.Rune())
			if emit { self.field.KeyUp(event.Rune(), value) }
		}
	}
	return true
}

// Converts a mouse cell position to field pixel coordinates.
// Returns false for positions outside the screen.
func pointerPosition(event *tcell.EventMouse, cols, rows int) (x, y float64, inside bool) {
	col, row := event.Position()
	if col < 0 || row < 0 || col >= cols || row >= rows { return 0, 0, false }
	return float64(col), float64(row*2), true
}

// Copies the canvas pixels to the terminal cells.
func (self *terminal) flush() {
	img := self.canvas.Image()
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top, bottom := self.cellColor(img.RGBAAt(x, y)), self.background
			if y + 1 < bounds.Max.Y { bottom = self.cellColor(img.RGBAAt(x, y + 1)) }
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			self.screen.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
	self.screen.Show()
}

func (self *terminal) cellColor(clr color.RGBA) tcell.Color {
	if clr.A == 0 { return self.background }
	return tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B))
}

func main() {
	// terminal pixels are huge, so scale everything down
	config := textdust.DefaultConfig()
	config.FontSize = 24
	config.LineHeight = 20
	config.Gap = 1
	config.PointerRadius = 12
	config.StrokeThickness = 1
	config.CacheSize = 1024*1024

	flagSettings := settings.Bind(flag.CommandLine, &config, "Hello How are you")
	fps := flag.Int("fps", 30, "frames per second")
	flag.Parse()
	err := flagSettings.Apply()
	if err != nil { log.Fatal(err) }
	if *fps < 1 { log.Fatal("fps must be positive") }

	screen, err := tcell.NewScreen()
	if err != nil { log.Fatal(err) }
	term, err := newTerminal(screen, config, flagSettings.Text)
	if err != nil { log.Fatal(err) }
	term.run(*fps)
	term.screen.Fini()
}
