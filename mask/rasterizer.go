package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/textdust/fract"

// Rasterizer is an interface for 2D vector graphics rasterization to an
// alpha mask.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline must be
	// drawn at the given fractional position (only the fractional part
	// of the coordinates is taken into account).
	//
	// The returned mask bounds are relative to the glyph origin, so
	// bounds.Min.Y is typically negative.
	Rasterize(sfnt.Segments, fract.Point) (*image.Alpha, error)

	// Returns a value that identifies the masks the rasterizer
	// produces. Two rasterizers with the same signature must produce
	// the same masks for the same outlines and fractional positions.
	// Used as part of the key when caching glyph masks.
	Signature() uint64
}

type vectorTracer interface {
	// Move to the given coordinate.
	MoveTo(fract.Point)

	// Create a segment to the given coordinate.
	LineTo(fract.Point)

	// Quadratic Bézier curve. The first parameter is the control
	// coordinate, and the second one the final target.
	QuadTo(fract.Point, fract.Point)

	// Cubic Bézier curve. The first two parameters are the control
	// coordinates, and the third one is the final target.
	CubeTo(fract.Point, fract.Point, fract.Point)
}

// A low level method to rasterize glyph masks.
//
// Returned masks have their coordinates adjusted so the mask is drawn at
// dot origin (0, 0) + the fractional part of the given position. To draw
// it at a specific dot, translate the mask by the floored dot coordinates.
//
// The image returned will be nil if the segments are empty or do
// not include any active lines or curves (e.g.: space glyphs).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fract.Point) (*image.Alpha, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, dot)
	}
	return nil, nil // nothing to draw
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(fract.FromFixedPoint(segment.Args[0]))
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(fract.FromFixedPoint(segment.Args[0]))
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(
				fract.FromFixedPoint(segment.Args[0]),
				fract.FromFixedPoint(segment.Args[1]),
			)
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(
				fract.FromFixedPoint(segment.Args[0]),
				fract.FromFixedPoint(segment.Args[1]),
				fract.FromFixedPoint(segment.Args[2]),
			)
		default:
			panic("unexpected segment.Op case")
		}
	}
}
