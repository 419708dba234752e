package textdust

import "testing"

func TestTextInput(t *testing.T) {
	input := NewTextInput("Hi")
	value, emit := input.Type(' ')
	if emit || value != "Hi " { t.Fatalf("expected space to be suppressed, got (%q, %t)", value, emit) }
	value, emit = input.Type('x')
	if !emit || value != "Hi x" { t.Fatalf("unexpected (%q, %t)", value, emit) }
	value, emit = input.Type('\n')
	if emit || value != "Hi x" { t.Fatalf("expected control characters to be ignored, got (%q, %t)", value, emit) }

	value, emit = input.Backspace()
	if !emit || value != "Hi " { t.Fatalf("unexpected (%q, %t)", value, emit) }
	input.Type('ñ')
	if input.String() != "Hi ñ" { t.Fatalf("unexpected value %q", input.String()) }
	input.Backspace()
	input.Backspace()
	input.Backspace()
	input.Backspace()
	value, emit = input.Backspace()
	if emit || value != "" { t.Fatalf("expected no emit on empty input, got (%q, %t)", value, emit) }
}
