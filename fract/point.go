package fract

import "image"
import "strconv"

import "golang.org/x/image/math/fixed"

// A pair of [Unit] coordinates. Used to keep track of the pen
// position while drawing lines of text.
type Point struct {
	X Unit
	Y Unit
}

// Creates a point from a pair of units.
func UnitsToPoint(x, y Unit) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from a [fixed.Point26_6].
func FromFixedPoint(point fixed.Point26_6) Point {
	return Point{ X: Unit(point.X), Y: Unit(point.Y) }
}

// Returns the point with both coordinates floored
// and converted to an [image.Point].
func (self Point) FloorImagePoint() image.Point {
	return image.Pt(self.X.ToIntFloor(), self.Y.ToIntFloor())
}

// Returns the point coordinates as a pair of float32s.
func (self Point) ToFloat32s() (x, y float32) {
	return self.X.ToFloat32(), self.Y.ToFloat32()
}

// Returns the point coordinates as a pair of float64s.
func (self Point) ToFloat64s() (x, y float64) {
	return self.X.ToFloat64(), self.Y.ToFloat64()
}

// Returns the result of adding the two points.
func (self Point) AddPoint(point Point) Point {
	self.X += point.X
	self.Y += point.Y
	return self
}

// Returns a textual representation of the point (e.g.: "(2.5, -4)").
func (self Point) String() string {
	x := strconv.FormatFloat(self.X.ToFloat64(), 'f', -1, 64)
	y := strconv.FormatFloat(self.Y.ToFloat64(), 'f', -1, 64)
	return "(" + x + ", " + y + ")"
}
