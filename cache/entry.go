package cache

import "image"
import "sync/atomic"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/textdust/fract"

// Identifies a glyph mask. Masks depend only on the fractional
// part of the drawing position, so only those 6 bits per axis
// are part of the key.
type Key struct {
	Font *sfnt.Font
	Size fract.Unit
	Index sfnt.GlyphIndex
	FractX, FractY uint8
	Signature uint64 // rasterizer signature
}

// Creates a new key. The dot is reduced to its fractional part.
func NewKey(font *sfnt.Font, size fract.Unit, index sfnt.GlyphIndex, dot fract.Point, signature uint64) Key {
	return Key{
		Font: font,
		Size: size,
		Index: index,
		FractX: uint8(dot.X.FractShift()),
		FractY: uint8(dot.Y.FractShift()),
		Signature: signature,
	}
}

// Estimated bytes taken by a mask, including some fixed overhead
// for the entry itself. Nil masks (e.g. spaces) only count the
// overhead.
func MaskByteSize(mask *image.Alpha) uint32 {
	const entryOverhead = 96
	if mask == nil { return entryOverhead }
	return uint32(len(mask.Pix)) + entryOverhead
}

type entry struct {
	mask *image.Alpha // read-only
	byteSize uint32 // read-only
	created uint32 // instant, read-only
	hits atomic.Uint32
}

// A measure of "bytes accessed per time". Coldest entries
// (smallest values) are candidates for eviction.
func (self *entry) hotness(instant uint32) uint32 {
	const evictionCost = 1000 // additional threshold and pad
	bytesHit := self.byteSize*self.hits.Load()
	elapsed  := instant - self.created
	if elapsed == 0 { elapsed = 1 }
	return (evictionCost + bytesHit)/elapsed
}
