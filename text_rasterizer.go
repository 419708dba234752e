package textdust

import "image"
import "image/color"
import "image/draw"

// Layout parameters for [TextRasterizer.Paint]().
type Layout struct {
	FontSize float64
	LineHeight float64
	MaxWidth float64 // wrapping width
	AnchorX float64 // horizontal center of every line
	CenterY float64 // vertical center of the whole text block
}

// The TextRasterizer paints wrapped, centered text with a gradient
// fill and a solid outline. Its output is what particles are later
// sampled from.
type TextRasterizer struct {
	renderer *Renderer
	stops []GradientStop
	stroke *image.Uniform
}

// Creates a new [TextRasterizer]. The renderer must already have a
// font set. A zero strokeThickness disables outlines.
func NewTextRasterizer(renderer *Renderer, stops []GradientStop, strokeColor color.Color, strokeThickness float64) *TextRasterizer {
	if renderer == nil { panic("nil renderer") }
	if renderer.GetFont() == nil { panic("renderer font must be set before creating a TextRasterizer") }
	if strokeColor == nil { strokeColor = color.White }
	renderer.SetAlign(Center)
	renderer.SetStrokeThickness(strokeThickness)
	return &TextRasterizer{
		renderer: renderer,
		stops: append([]GradientStop(nil), stops...),
		stroke: image.NewUniform(strokeColor),
	}
}

// Returns the underlying text renderer.
func (self *TextRasterizer) Renderer() *Renderer { return self.renderer }

// Wraps the given text and paints it on the target. The gradient
// runs from the top-left to the bottom-right corner of the target.
// Lines are filled first and stroked afterwards. Returns the
// painted lines.
func (self *TextRasterizer) Paint(target draw.Image, text string, layout Layout) []string {
	if target == nil { panic("can't paint on nil target") }

	self.renderer.SetSize(layout.FontSize)
	lines := WrapLines(text, layout.MaxWidth, self.renderer.Measure)
	if len(lines) == 0 { return lines }

	bounds := target.Bounds()
	gradient := NewLinearGradient(
		float64(bounds.Min.X), float64(bounds.Min.Y),
		float64(bounds.Max.X), float64(bounds.Max.Y),
		self.stops...,
	)

	blockHeight := layout.LineHeight*float64(len(lines) - 1)
	y := layout.CenterY - blockHeight/2
	for _, line := range lines {
		self.renderer.Draw(target, line, layout.AnchorX, y, gradient)
		self.renderer.DrawStroke(target, line, layout.AnchorX, y, self.stroke)
		y += layout.LineHeight
	}
	return lines
}
