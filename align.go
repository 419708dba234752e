package textdust

// Aligns tell a [Renderer] how to interpret the coordinates
// that [Renderer.Draw]() and [Renderer.DrawStroke]() receive.
//
// Aligns have a vertical and a horizontal component, which
// can be combined with the bitwise OR operator:
//   renderer.SetAlign(textdust.Top | textdust.HorzCenter)
type Align uint8

const (
	alignHorzMask Align = 0b0000_1111
	alignVertMask Align = 0b1111_0000
)

const (
	Left       Align = 0b0000_0001
	HorzCenter Align = 0b0000_0010
	Right      Align = 0b0000_0100

	Top        Align = 0b0001_0000
	VertCenter Align = 0b0010_0000 // middle of ascent and descent
	Baseline   Align = 0b0100_0000

	Center = HorzCenter | VertCenter
)

// Returns the horizontal component of the align.
func (self Align) Horz() Align { return self & alignHorzMask }

// Returns the vertical component of the align.
func (self Align) Vert() Align { return self & alignVertMask }

func (self Align) String() string {
	horz, vert := "?", "?"
	switch self.Horz() {
	case Left      : horz = "Left"
	case HorzCenter: horz = "HorzCenter"
	case Right     : horz = "Right"
	}
	switch self.Vert() {
	case Top       : vert = "Top"
	case VertCenter: vert = "VertCenter"
	case Baseline  : vert = "Baseline"
	}
	return "(" + vert + " | " + horz + ")"
}
