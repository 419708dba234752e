package mask

import "image"
import "math"

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/textdust/fract"

var _ Rasterizer = (*StrokeRasterizer)(nil)

// The StrokeRasterizer produces masks for glyph outlines stroked with
// the given thickness, half of it falling inside the glyph and half of
// it outside.
//
// The stroke is computed from the filled glyph mask as the difference
// between its dilation and its erosion by a disk with radius thickness/2.
// In web API terms, joins end up rounded and there are no caps, since
// glyph contours are always closed.
type StrokeRasterizer struct {
	fill DefaultRasterizer
	thickness float64
	offsets []image.Point // disk kernel for the current thickness
}

// Creates a new stroke rasterizer. See [StrokeRasterizer.SetThickness]().
func NewStrokeRasterizer(thickness float64) *StrokeRasterizer {
	rast := &StrokeRasterizer{}
	rast.SetThickness(thickness)
	return rast
}

// Sets the stroke thickness, in pixels. Values must be in
// the [0.5, 64] range.
func (self *StrokeRasterizer) SetThickness(thickness float64) {
	if thickness < 0.5 || thickness > 64 { panic("stroke thickness must be in [0.5, 64]") }
	self.thickness = thickness
	self.offsets = diskOffsets(thickness/2)
}

// Returns the current stroke thickness.
func (self *StrokeRasterizer) GetThickness() float64 { return self.thickness }

// Satisfies the [Rasterizer] interface. The thickness is encoded
// on the lowest bits.
func (self *StrokeRasterizer) Signature() uint64 {
	return 0x5354524B_00000000 | uint64(math.Float32bits(float32(self.thickness)))
}

// Satisfies the [Rasterizer] interface.
func (self *StrokeRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	if self.offsets == nil { self.SetThickness(1) }
	margin := fract.FromInt(int(math.Ceil(self.thickness/2)) + 1)
	bounds := fract.FromFixedRect(outline.Bounds()).Pad(margin)
	fill := self.fill.rasterizeWithin(outline, bounds, origin)
	return outlineRing(fill, self.offsets), nil
}

// Returns, for each pixel, the maximum minus the minimum coverage
// found in the given kernel around it. Pixels outside the mask
// have zero coverage.
func outlineRing(fill *image.Alpha, kernel []image.Point) *image.Alpha {
	ring := image.NewAlpha(fill.Rect)
	bounds := fill.Rect
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var high, low uint8 = 0, 255
			for _, offset := range kernel {
				px, py := x + offset.X, y + offset.Y
				var value uint8
				if image.Pt(px, py).In(bounds) {
					value = fill.Pix[fill.PixOffset(px, py)]
				}
				if value > high { high = value }
				if value < low  { low  = value }
			}
			ring.Pix[ring.PixOffset(x, y)] = high - low
		}
	}
	return ring
}

// Integer offsets within the given radius from the origin.
func diskOffsets(radius float64) []image.Point {
	reach := int(math.Floor(radius))
	limit := radius*radius
	offsets := make([]image.Point, 0, (2*reach + 1)*(2*reach + 1))
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			if float64(dx*dx + dy*dy) > limit { continue }
			offsets = append(offsets, image.Pt(dx, dy))
		}
	}
	return offsets
}
