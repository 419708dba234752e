// The mask subpackage defines the [Rasterizer] interface used to turn
// glyph outlines into alpha masks, and provides the two implementations
// needed to paint text before it's converted into particles:
//  - [DefaultRasterizer], which fills the glyph outlines.
//  - [StrokeRasterizer], which produces a band of the given thickness
//    centered on the glyph outlines, like a canvas strokeText() call.
//
// Masks are later composited by the text renderer with a paint source
// (a uniform color or a gradient).
package mask
