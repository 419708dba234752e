package textdust

import "math"
import "image"
import "image/draw"
import "image/color"

// A Surface is anything particles can be drawn on. Coordinates
// are given in pixels.
type Surface interface {
	Bounds() image.Rectangle

	// Clears the given region to full transparency.
	ClearRect(rect image.Rectangle)

	// Fills the given rectangle with an opaque color. Implementations
	// may floor coordinates; no anti-aliasing is expected.
	FillRect(x, y, width, height float64, clr color.Color)
}

// A PixelSurface is a [Surface] that text can be painted on and whose
// pixels can be read back. Text painting must happen on the image
// returned by Target().
type PixelSurface interface {
	Surface

	// Returns a copy of the non-premultiplied RGBA8 pixels in the
	// given region, row-major, with 4 bytes per pixel.
	ReadPixels(rect image.Rectangle) []byte

	// Returns the image backing the surface.
	Target() draw.Image
}

// A Canvas is a CPU [PixelSurface] backed by an *image.RGBA.
type Canvas struct {
	image *image.RGBA
}

var _ PixelSurface = (*Canvas)(nil)

// Creates a new transparent canvas. Negative sizes are
// treated as zero.
func NewCanvas(width, height int) *Canvas {
	if width  < 0 { width  = 0 }
	if height < 0 { height = 0 }
	return &Canvas{ image: image.NewRGBA(image.Rect(0, 0, width, height)) }
}

// Satisfies the [Surface] interface.
func (self *Canvas) Bounds() image.Rectangle { return self.image.Rect }

// Returns the underlying image. Modifications are visible
// on the canvas.
func (self *Canvas) Image() *image.RGBA { return self.image }

// Satisfies the [PixelSurface] interface.
func (self *Canvas) Target() draw.Image { return self.image }

// Clears the whole canvas.
func (self *Canvas) Clear() { self.ClearRect(self.image.Rect) }

// Satisfies the [Surface] interface.
func (self *Canvas) ClearRect(rect image.Rectangle) {
	rect = rect.Intersect(self.image.Rect)
	if rect.Empty() { return }
	rowBytes := rect.Dx()*4
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		start := self.image.PixOffset(rect.Min.X, y)
		clear(self.image.Pix[start : start + rowBytes])
	}
}

// Satisfies the [Surface] interface. Coordinates are floored and
// sizes rounded up, so a particle always covers whole pixels.
func (self *Canvas) FillRect(x, y, width, height float64, clr color.Color) {
	minX, minY := int(math.Floor(x)), int(math.Floor(y))
	rect := image.Rect(minX, minY, minX + int(math.Ceil(width)), minY + int(math.Ceil(height)))
	rect = rect.Intersect(self.image.Rect)
	if rect.Empty() { return }

	rgba, isRGBA := clr.(color.RGBA)
	if !isRGBA || rgba.A != 255 {
		draw.Draw(self.image, rect, image.NewUniform(clr), image.Point{}, draw.Over)
		return
	}

	// fast path for opaque colors, which is what particles use
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		offset := self.image.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			self.image.Pix[offset + 0] = rgba.R
			self.image.Pix[offset + 1] = rgba.G
			self.image.Pix[offset + 2] = rgba.B
			self.image.Pix[offset + 3] = 255
			offset += 4
		}
	}
}

// Satisfies the [PixelSurface] interface. Regions outside
// the canvas are clipped. The canvas stores premultiplied
// colors, so translucent pixels are converted back to
// straight alpha.
func (self *Canvas) ReadPixels(rect image.Rectangle) []byte {
	rect = rect.Intersect(self.image.Rect)
	if rect.Empty() { return nil }
	rowBytes := rect.Dx()*4
	pixels := make([]byte, rowBytes*rect.Dy())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		start := self.image.PixOffset(rect.Min.X, y)
		row := pixels[(y - rect.Min.Y)*rowBytes : (y - rect.Min.Y + 1)*rowBytes]
		copy(row, self.image.Pix[start : start + rowBytes])
		for i := 0; i < rowBytes; i += 4 {
			unpremultiply(row[i : i + 4])
		}
	}
	return pixels
}

// Converts a premultiplied RGBA8 pixel to straight alpha in place.
func unpremultiply(pixel []byte) {
	alpha := uint32(pixel[3])
	if alpha == 0 || alpha == 255 { return }
	for i := 0; i < 3; i++ {
		value := (uint32(pixel[i])*255 + alpha/2)/alpha
		pixel[i] = uint8(min(value, 255))
	}
}
