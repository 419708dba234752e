package textdust

import "image"
import "image/color"

import "github.com/lucasb-eyer/go-colorful"

const gradientLutSize = 1024

// A color stop for a [LinearGradient]. Offsets go from 0 to 1.
type GradientStop struct {
	Offset float64
	Color color.Color
}

// The red, fuchsia and purple stops at offsets 0.3, 0.5 and 0.7
// used to fill the text by default.
func DefaultGradientStops() []GradientStop {
	return []GradientStop{
		{ Offset: 0.3, Color: namedColors["red"] },
		{ Offset: 0.5, Color: namedColors["fuchsia"] },
		{ Offset: 0.7, Color: namedColors["purple"] },
	}
}

// A LinearGradient is an unbounded [image.Image] whose colors vary
// along the line from (x0, y0) to (x1, y1), like a canvas linear
// gradient. It's used as the paint source when filling glyph masks.
//
// Colors between stops are interpolated in sRGB space. Before the
// first stop and after the last one, the color is held constant. A
// gradient with no stops or with coincident start and end points is
// fully transparent.
type LinearGradient struct {
	x0, y0 float64
	dx, dy float64
	invLengthSq float64
	lut [gradientLutSize]color.RGBA
}

var _ image.Image = (*LinearGradient)(nil)

// Creates a new linear gradient. Stops must be sorted by offset.
func NewLinearGradient(x0, y0, x1, y1 float64, stops ...GradientStop) *LinearGradient {
	gradient := &LinearGradient{ x0: x0, y0: y0, dx: x1 - x0, dy: y1 - y0 }
	lengthSq := gradient.dx*gradient.dx + gradient.dy*gradient.dy
	if lengthSq == 0 || len(stops) == 0 { return gradient }
	gradient.invLengthSq = 1.0/lengthSq

	type blendStop struct { offset float64; color colorful.Color; alpha float64 }
	blendStops := make([]blendStop, len(stops))
	for i, stop := range stops {
		r, g, b, a := stop.Color.RGBA()
		var clr colorful.Color
		if a > 0 { // un-premultiply
			clr = colorful.Color{
				R: float64(r)/float64(a),
				G: float64(g)/float64(a),
				B: float64(b)/float64(a),
			}
		}
		blendStops[i] = blendStop{ stop.Offset, clr, float64(a)/0xFFFF }
	}

	last := len(blendStops) - 1
	for i := 0; i < gradientLutSize; i++ {
		t := float64(i)/(gradientLutSize - 1)
		var clr colorful.Color
		var alpha float64
		switch {
		case t <= blendStops[0].offset:
			clr, alpha = blendStops[0].color, blendStops[0].alpha
		case t >= blendStops[last].offset:
			clr, alpha = blendStops[last].color, blendStops[last].alpha
		default:
			k := 1
			for blendStops[k].offset < t { k += 1 }
			from, to := blendStops[k - 1], blendStops[k]
			span := to.offset - from.offset
			mix := 1.0
			if span > 0 { mix = (t - from.offset)/span }
			clr = from.color.BlendRgb(to.color, mix)
			alpha = from.alpha + (to.alpha - from.alpha)*mix
		}
		gradient.lut[i] = premultiplied(clr, alpha)
	}
	return gradient
}

// Satisfies the [image.Image] interface.
func (self *LinearGradient) ColorModel() color.Model { return color.RGBAModel }

// Satisfies the [image.Image] interface. The gradient is unbounded.
func (self *LinearGradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

// Satisfies the [image.Image] interface.
func (self *LinearGradient) At(x, y int) color.Color { return self.RGBAAt(x, y) }

// Returns the gradient color at the center of the given pixel.
func (self *LinearGradient) RGBAAt(x, y int) color.RGBA {
	if self.invLengthSq == 0 { return color.RGBA{} }
	px, py := float64(x) + 0.5 - self.x0, float64(y) + 0.5 - self.y0
	t := (px*self.dx + py*self.dy)*self.invLengthSq
	if t <= 0 { return self.lut[0] }
	if t >= 1 { return self.lut[gradientLutSize - 1] }
	return self.lut[int(t*(gradientLutSize - 1) + 0.5)]
}

func premultiplied(clr colorful.Color, alpha float64) color.RGBA {
	r, g, b := clr.Clamped().RGB255()
	return color.RGBA{
		R: uint8(float64(r)*alpha + 0.5),
		G: uint8(float64(g)*alpha + 0.5),
		B: uint8(float64(b)*alpha + 0.5),
		A: uint8(alpha*255 + 0.5),
	}
}
