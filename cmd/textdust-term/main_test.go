package main

import "testing"

import "github.com/gdamore/tcell/v2"

import "github.com/tinne26/textdust"

func newTestTerminal(t *testing.T) *terminal {
	config := textdust.DefaultConfig()
	config.FontSize = 24
	config.LineHeight = 20
	config.Gap = 1
	config.Seed = 3
	term, err := newTerminal(tcell.NewSimulationScreen("UTF-8"), config, "Hi")
	if err != nil { t.Fatal(err) }
	t.Cleanup(term.screen.Fini)
	return term
}

func TestPointerPosition(t *testing.T) {
	x, y, inside := pointerPosition(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone), 10, 5)
	if !inside || x != 3 || y != 8 { t.Fatalf("unexpected position (%g, %g, %t)", x, y, inside) }

	outside := [][2]int{ {-1, 0}, {0, -1}, {10, 0}, {0, 5} }
	for _, pos := range outside {
		event := tcell.NewEventMouse(pos[0], pos[1], tcell.ButtonNone, tcell.ModNone)
		_, _, inside = pointerPosition(event, 10, 5)
		if inside { t.Fatalf("expected %v to be outside a 10x5 screen", pos) }
	}
}

func TestHandlePointerEvents(t *testing.T) {
	term := newTestTerminal(t)
	cols, rows := term.screen.Size()

	term.handleEvent(tcell.NewEventMouse(2, 1, tcell.ButtonNone, tcell.ModNone))
	state := term.field.Pointer()
	if !state.Active || state.X != 2 || state.Y != 2 { t.Fatalf("unexpected pointer %+v", state) }

	term.handleEvent(tcell.NewEventFocus(false))
	if term.field.Pointer().Active { t.Fatal("expected focus loss to clear the pointer") }

	term.handleEvent(tcell.NewEventMouse(2, 1, tcell.ButtonNone, tcell.ModNone))
	term.handleEvent(tcell.NewEventFocus(true))
	if !term.field.Pointer().Active { t.Fatal("expected focus gain to keep the pointer") }

	term.handleEvent(tcell.NewEventMouse(cols, rows, tcell.ButtonNone, tcell.ModNone))
	if term.field.Pointer().Active { t.Fatal("expected out of screen mouse to clear the pointer") }
}

func TestHandleKeys(t *testing.T) {
	term := newTestTerminal(t)
	if !term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'o', tcell.ModNone)) {
		t.Fatal("typing must not quit")
	}
	if term.field.Text() != "Hio" { t.Fatalf("unexpected text %q", term.field.Text()) }
	if term.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("expected escape to quit")
	}
}
