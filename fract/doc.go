// The fract subpackage defines a [Unit] type representing a 26.6
// fixed point value, alongside the [Point] and [Rect] helper types.
//
// Font metrics, glyph advances and glyph outlines all come from
// [golang.org/x/image/font/sfnt] as 26.6 fixed point values. Keeping
// them in that format while laying out text lines and placing glyph
// masks avoids accumulating float rounding errors, and it makes the
// subpixel part of each glyph position trivial to extract when
// rasterizing.
//
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
