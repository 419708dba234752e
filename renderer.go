package textdust

import "image"
import "image/draw"
import "strconv"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/textdust/fract"
import "github.com/tinne26/textdust/mask"
import "github.com/tinne26/textdust/cache"

const hintingNone = font.HintingNone

// The Renderer measures and paints single lines of text on any
// [draw.Image]. Glyph masks can be filled or stroked, and they are
// composited with an arbitrary paint source (e.g. an [image.Uniform]
// or a [LinearGradient]), with regular alpha blending.
//
// The zero value is not valid, use [NewRenderer]() instead. A font
// must be set before measuring or drawing. Renderers can't be used
// concurrently.
type Renderer struct {
	font *sfnt.Font
	buffer sfnt.Buffer

	fillRasterizer mask.DefaultRasterizer
	strokeRasterizer *mask.StrokeRasterizer
	cache *cache.MaskCache

	size fract.Unit
	align Align

	// metrics for the current font and size
	metricsReady bool
	ascent fract.Unit
	descent fract.Unit
	lineHeight fract.Unit
}

// Creates a new [Renderer] with a 16px size, (Baseline | Left)
// align and a 1px stroke thickness.
func NewRenderer() *Renderer {
	return &Renderer{
		size: 16*64,
		align: Baseline | Left,
		strokeRasterizer: mask.NewStrokeRasterizer(1),
	}
}

// Sets the font to be used on subsequent operations.
func (self *Renderer) SetFont(font *sfnt.Font) {
	if font == self.font { return }
	self.font = font
	self.metricsReady = false
}

// Returns the current font. The font is nil by default.
func (self *Renderer) GetFont() *sfnt.Font { return self.font }

// Sets the font size in pixels. Negative sizes will panic.
func (self *Renderer) SetSize(size float64) {
	newSize := fract.PixelsPerEm(size)
	if newSize == self.size { return }
	self.size = newSize
	self.metricsReady = false
}

// Returns the current font size in pixels.
func (self *Renderer) GetSize() float64 { return self.size.ToFloat64() }

// Sets the align used to interpret draw coordinates.
func (self *Renderer) SetAlign(align Align) {
	if align.Horz() == 0 { align |= Left }
	if align.Vert() == 0 { align |= Baseline }
	self.align = align
}

// Returns the current align.
func (self *Renderer) GetAlign() Align { return self.align }

// Sets the thickness of the outlines drawn with [Renderer.DrawStroke]().
// A zero thickness disables strokes, otherwise the value must be in
// the [0.5, 64] range.
func (self *Renderer) SetStrokeThickness(thickness float64) {
	if thickness == 0 {
		self.strokeRasterizer = nil
	} else if self.strokeRasterizer == nil {
		self.strokeRasterizer = mask.NewStrokeRasterizer(thickness)
	} else {
		self.strokeRasterizer.SetThickness(thickness)
	}
}

// Returns the current stroke thickness. Zero if strokes are disabled.
func (self *Renderer) GetStrokeThickness() float64 {
	if self.strokeRasterizer == nil { return 0 }
	return self.strokeRasterizer.GetThickness()
}

// Sets the cache used for glyph masks. Nil disables caching.
// Caches can be shared by multiple renderers.
func (self *Renderer) SetCache(maskCache *cache.MaskCache) { self.cache = maskCache }

// Returns the current glyph mask cache, which may be nil.
func (self *Renderer) GetCache() *cache.MaskCache { return self.cache }

// Returns the ascent, descent and line height of the current
// font at the current size. Ascent and descent are both positive.
func (self *Renderer) Metrics() (ascent, descent, lineHeight float64) {
	self.updateMetrics()
	return self.ascent.ToFloat64(), self.descent.ToFloat64(), self.lineHeight.ToFloat64()
}

// Returns the advance width of the given single line of text,
// kerning included. Like a canvas measureText(), trailing spaces
// count, and glyph overhangs don't.
func (self *Renderer) Measure(text string) float64 {
	return self.fractMeasure(text).ToFloat64()
}

// Fills the given text on the target, using paint as the color source.
// Paint coordinates match target coordinates. The text is treated as a
// single line.
func (self *Renderer) Draw(target draw.Image, text string, x, y float64, paint image.Image) {
	self.drawWith(target, text, x, y, paint, &self.fillRasterizer)
}

// Like [Renderer.Draw](), but stroking the glyph outlines instead of
// filling them. See [Renderer.SetStrokeThickness]().
func (self *Renderer) DrawStroke(target draw.Image, text string, x, y float64, paint image.Image) {
	if self.strokeRasterizer == nil { return }
	self.drawWith(target, text, x, y, paint, self.strokeRasterizer)
}

// ---- internal ----

func (self *Renderer) fractMeasure(text string) fract.Unit {
	if text == "" { return 0 }
	if self.font == nil { panic("can't measure text with nil font (tip: Renderer.SetFont())") }

	var width fract.Unit
	var prevGlyphIndex sfnt.GlyphIndex
	var lineStart bool = true
	for _, codePoint := range text {
		currGlyphIndex := self.getGlyphIndex(codePoint)
		if lineStart {
			lineStart = false
		} else {
			width += self.getKern(prevGlyphIndex, currGlyphIndex)
		}
		width += self.getAdvance(currGlyphIndex)
		prevGlyphIndex = currGlyphIndex
	}
	return width
}

func (self *Renderer) drawWith(target draw.Image, text string, x, y float64, paint image.Image, rasterizer mask.Rasterizer) {
	// return directly on superfluous invocations
	if text == "" { return }

	// preconditions
	if target == nil { panic("can't draw on nil target") }
	if paint  == nil { panic("can't draw with nil paint") }
	if self.font == nil { panic("can't draw text with nil font (tip: Renderer.SetFont())") }

	dot := self.alignedDot(text, fract.FromFloat64(x), fract.FromFloat64(y))
	var prevGlyphIndex sfnt.GlyphIndex
	var lineStart bool = true
	for _, codePoint := range text {
		currGlyphIndex := self.getGlyphIndex(codePoint)
		if lineStart {
			lineStart = false
		} else {
			dot.X += self.getKern(prevGlyphIndex, currGlyphIndex)
		}
		self.drawGlyph(target, currGlyphIndex, dot, paint, rasterizer)
		dot.X += self.getAdvance(currGlyphIndex)
		prevGlyphIndex = currGlyphIndex
	}
}

// Converts the given reference coordinates to the starting dot
// based on the current align.
func (self *Renderer) alignedDot(text string, x, y fract.Unit) fract.Point {
	switch self.align.Horz() {
	case HorzCenter:
		x -= self.fractMeasure(text).Half()
	case Right:
		x -= self.fractMeasure(text)
	}

	switch self.align.Vert() {
	case Top:
		self.updateMetrics()
		y += self.ascent
	case VertCenter:
		self.updateMetrics()
		y += (self.ascent - self.descent).Half()
	}
	return fract.UnitsToPoint(x, y)
}

func (self *Renderer) drawGlyph(target draw.Image, index sfnt.GlyphIndex, dot fract.Point, paint image.Image, rasterizer mask.Rasterizer) {
	alphaMask := self.loadMask(index, dot, rasterizer)
	if alphaMask == nil { return } // spaces and empty glyphs will be nil

	targetRect := alphaMask.Rect.Add(dot.FloorImagePoint())
	draw.DrawMask(target, targetRect, paint, targetRect.Min, alphaMask, alphaMask.Rect.Min, draw.Over)
}

// Gets the glyph mask from the cache or rasterizes it.
func (self *Renderer) loadMask(index sfnt.GlyphIndex, dot fract.Point, rasterizer mask.Rasterizer) *image.Alpha {
	var key cache.Key
	if self.cache != nil {
		key = cache.NewKey(self.font, self.size, index, dot, rasterizer.Signature())
		alphaMask, found := self.cache.Get(key)
		if found { return alphaMask }
	}

	segments, err := self.font.LoadGlyph(&self.buffer, index, self.size.Fixed(), nil)
	if err != nil {
		panic("font.LoadGlyph(index = " + strconv.Itoa(int(index)) + ") error: " + err.Error())
	}
	alphaMask, err := mask.Rasterize(segments, rasterizer, dot)
	if err != nil { panic("mask.Rasterize error: " + err.Error()) }
	if self.cache != nil { self.cache.Put(key, alphaMask) }
	return alphaMask
}

// Missing glyphs resolve to index 0, which most fonts draw as
// a rectangle. Text comes straight from user input, so we don't
// want to panic on emojis or scripts the font doesn't cover.
func (self *Renderer) getGlyphIndex(codePoint rune) sfnt.GlyphIndex {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil { panic("font.GlyphIndex error: " + err.Error()) }
	return index
}

func (self *Renderer) getAdvance(index sfnt.GlyphIndex) fract.Unit {
	advance, err := self.font.GlyphAdvance(&self.buffer, index, self.size.Fixed(), hintingNone)
	if err != nil {
		panic("font.GlyphAdvance(index = " + strconv.Itoa(int(index)) + ") error: " + err.Error())
	}
	return fract.FromFixed(advance)
}

func (self *Renderer) getKern(prevIndex, currIndex sfnt.GlyphIndex) fract.Unit {
	kern, err := self.font.Kern(&self.buffer, prevIndex, currIndex, self.size.Fixed(), hintingNone)
	if err == nil { return fract.FromFixed(kern) }
	if err == sfnt.ErrNotFound { return 0 }

	msg := "font.Kern failed for glyphs with indices "
	msg += strconv.Itoa(int(prevIndex)) + " and "
	msg += strconv.Itoa(int(currIndex)) + ": " + err.Error()
	panic(msg)
}

func (self *Renderer) updateMetrics() {
	if self.metricsReady { return }
	if self.font == nil { panic("can't get metrics with nil font (tip: Renderer.SetFont())") }
	metrics, err := self.font.Metrics(&self.buffer, self.size.Fixed(), hintingNone)
	if err != nil { panic("font.Metrics error: " + err.Error()) }
	self.ascent = fract.FromFixed(metrics.Ascent)
	self.descent = fract.FromFixed(metrics.Descent)
	self.lineHeight = fract.FromFixed(metrics.Height)
	self.metricsReady = true
}
