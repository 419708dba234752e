// The cache subpackage provides a bounded, concurrent-safe cache
// for glyph masks.
//
// Text is painted again from scratch on every edit and resize, but
// most of the glyphs, sizes and subpixel positions repeat, so caching
// the rasterized masks saves most of the rasterization work. This is
// especially noticeable for stroked text, as strokes are much more
// expensive than fills.
//
// Regarding sizes: a 100px glyph mask is around 60x80 pixels, so each
// mask takes ~5KiB. Stroked masks are slightly bigger. Each glyph can
// end up rasterized at up to 64 horizontal subpixel positions, though
// in practice a few dozens of masks per glyph is the realistic upper
// bound. A few MiBs are enough for typical inputs.
package cache
