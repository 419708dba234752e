package fract

import "image"

import "golang.org/x/image/math/fixed"

// A pair of [Point] values defining a rectangular region.
// Like [image.Rectangle], the Max point is not included
// in the rectangle.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a [fixed.Rectangle26_6], like the
// ones returned by sfnt.Segments.Bounds().
func FromFixedRect(rect fixed.Rectangle26_6) Rect {
	return Rect{ Min: FromFixedPoint(rect.Min), Max: FromFixedPoint(rect.Max) }
}

// Returns the smallest [image.Rectangle] containing the rect.
func (self Rect) ImageRect() image.Rectangle {
	return image.Rect(
		self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor(),
		self.Max.X.ToIntCeil(), self.Max.Y.ToIntCeil(),
	)
}

func (self Rect) Width()  Unit { return self.Max.X - self.Min.X }
func (self Rect) Height() Unit { return self.Max.Y - self.Min.Y }

// Returns whether the rect has no area.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

// Returns the rect expanded by the given margin on all sides.
func (self Rect) Pad(margin Unit) Rect {
	self.Min.X -= margin
	self.Min.Y -= margin
	self.Max.X += margin
	self.Max.Y += margin
	return self
}
