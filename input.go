package textdust

// A minimal single line text input. It mirrors what a text box
// would emit on key release: the full current value, except for
// spaces, which don't trigger an emit so the particles aren't
// resampled in the middle of a word.
type TextInput struct {
	runes []rune
}

// Creates a text input with the given initial value.
func NewTextInput(initial string) *TextInput {
	return &TextInput{ runes: []rune(initial) }
}

// Appends the given rune and returns the new value, together
// with whether it should be emitted. Control characters are
// ignored.
func (self *TextInput) Type(r rune) (string, bool) {
	if r < ' ' || r == 0x7F { return self.String(), false }
	self.runes = append(self.runes, r)
	return self.String(), r != ' '
}

// Removes the last rune and returns the new value. Returns
// false if the input was already empty.
func (self *TextInput) Backspace() (string, bool) {
	if len(self.runes) == 0 { return "", false }
	self.runes = self.runes[ : len(self.runes) - 1]
	return self.String(), true
}

// Returns the current value.
func (self *TextInput) String() string { return string(self.runes) }
