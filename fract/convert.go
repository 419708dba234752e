package fract

// Converts a float64 pixel size to the fixed.Int26_6 "pixels per em"
// value expected by sfnt metric functions, rounding to the closest
// representable value.
func PixelsPerEm(size float64) Unit {
	if size < 0 { panic("negative size") }
	return FromFloat64(size)
}
