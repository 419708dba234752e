package fract

import "golang.org/x/image/math/fixed"

// Fixed point type to represent fractional values used for text layout.
//
// 26 bits represent the integer part of the value, while the remaining 6 bits
// represent the decimal part. So, var pixels Unit = 64 means 1 pixel, and 96
// would be 1.5 pixels.
type Unit int32

// Minimum and maximum constants.
const (
	MaxUnit Unit = +0x7FFFFFFF
	MinUnit Unit = -0x7FFFFFFF - 1
	One Unit = 64
	MaxInt int = +33554431
	MinInt int = -33554432
	Delta float64 = 0.015625 // 1.0/64.0
)

// Fast conversion from int to [Unit]. If the int value is not
// representable with a [Unit], the result is undefined.
func FromInt(value int) Unit { return Unit(value << 6) }

// Conversion from [fixed.Int26_6]. Both types share representation.
func FromFixed(value fixed.Int26_6) Unit { return Unit(value) }

// Converts a float64 to the closest Unit, rounding up in case
// of ties. Doesn't account for NaNs, infinites nor overflows.
func FromFloat64(value float64) Unit {
	unitApprox := Unit(value*64)
	fp64Approx := unitApprox.ToFloat64()
	if fp64Approx == value { return unitApprox }
	if fp64Approx > value {
		unitApprox -= 1
		fp64Approx = unitApprox.ToFloat64()
	}

	if value - fp64Approx >= 1./128.0 { unitApprox += 1 }
	return unitApprox
}

// Returns the unit as a [fixed.Int26_6].
func (self Unit) Fixed() fixed.Int26_6 { return fixed.Int26_6(self) }

func (self Unit) ToFloat64() float64 { return float64(self)/64.0 }
func (self Unit) ToFloat32() float32 { return float32(self)/64.0 }

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int { return (int(self) +  0) >> 6 }
func (self Unit) ToIntCeil()  int { return (int(self) + 63) >> 6 }

// Rounds to the closest int, with ties going up.
func (self Unit) ToInt() int { return (int(self) + 32) >> 6 }

func (self Unit) Floor() Unit { return self & ^0x3F }
func (self Unit) Ceil()  Unit { return (self + 0x3F).Floor() }

// Returns the fractional part of the unit as a value
// between 0 and 63, also for negative units.
func (self Unit) FractShift() Unit { return self & 0x3F }

// Returns the halved unit, rounding towards negative infinity.
func (self Unit) Half() Unit { return self >> 1 }
