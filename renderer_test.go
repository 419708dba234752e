package textdust

import "bytes"
import "image"
import "image/color"
import "testing"

import "github.com/tinne26/textdust/cache"

func TestRendererMeasure(t *testing.T) {
	renderer := NewRenderer()
	if doesNotPanic(func() { renderer.Measure("x") }) {
		t.Fatal("expected measuring with nil font to panic")
	}

	renderer.SetFont(testFont)
	if renderer.Measure("") != 0 { t.Fatal("expected empty text to measure 0") }

	renderer.SetSize(16)
	small := renderer.Measure("Hi")
	if small <= 0 { t.Fatalf("expected positive width, got %g", small) }
	renderer.SetSize(32)
	big := renderer.Measure("Hi")
	if big <= small { t.Fatalf("expected %g > %g", big, small) }

	if renderer.Measure("a b") <= renderer.Measure("ab") {
		t.Fatal("expected spaces to add width")
	}
	if renderer.Measure("ab ") <= renderer.Measure("ab") {
		t.Fatal("expected trailing spaces to add width")
	}

	if !doesNotPanic(func() { renderer.Measure("\U0001F600 世") }) {
		t.Fatal("measuring glyphs missing from the font panicked")
	}
}

func TestRendererMetrics(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetFont(testFont)
	renderer.SetSize(64)
	ascent, descent, lineHeight := renderer.Metrics()
	if ascent <= 0 || descent <= 0 { t.Fatalf("unexpected metrics %g, %g", ascent, descent) }
	if lineHeight < ascent { t.Fatalf("line height %g below ascent %g", lineHeight, ascent) }

	renderer.SetSize(32)
	ascent2, _, _ := renderer.Metrics()
	if ascent2 >= ascent { t.Fatal("expected metrics to be refreshed on size change") }
}

func TestRendererDraw(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetFont(testFont)
	renderer.SetSize(40)
	renderer.SetAlign(Center)
	if renderer.GetAlign() != Center { t.Fatalf("unexpected align %s", renderer.GetAlign()) }

	target := image.NewRGBA(image.Rect(0, 0, 200, 100))
	red := image.NewUniform(color.RGBA{255, 0, 0, 255})
	renderer.Draw(target, "Hi", 100, 50, red)

	ink := inkBounds(target)
	if ink.Empty() { t.Fatal("expected some pixels to be drawn") }
	center := (ink.Min.X + ink.Max.X)/2
	if center < 95 || center > 105 {
		t.Fatalf("expected text centered around x = 100, ink bounds %v", ink)
	}
	if ink.Min.Y < 50 - 40 || ink.Max.Y > 50 + 40 {
		t.Fatalf("expected text around y = 50, ink bounds %v", ink)
	}

	for i := 0; i < len(target.Pix); i += 4 {
		if target.Pix[i + 1] != 0 || target.Pix[i + 2] != 0 {
			t.Fatalf("unexpected non-red pixel at offset %d", i)
		}
		if target.Pix[i] != target.Pix[i + 3] {
			t.Fatalf("expected premultiplied red at offset %d", i)
		}
	}
}

func TestRendererAlign(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetFont(testFont)
	renderer.SetSize(30)
	paint := image.NewUniform(color.White)

	renderer.SetAlign(Left | Top)
	left := image.NewRGBA(image.Rect(0, 0, 300, 100))
	renderer.Draw(left, "Text", 150, 20, paint)
	ink := inkBounds(left)
	if ink.Min.X < 149 || ink.Min.Y < 20 { t.Fatalf("unexpected ink bounds %v", ink) }

	renderer.SetAlign(Right | Baseline)
	right := image.NewRGBA(image.Rect(0, 0, 300, 100))
	renderer.Draw(right, "Text", 150, 60, paint)
	ink = inkBounds(right)
	if ink.Max.X > 151 || ink.Max.Y > 61 { t.Fatalf("unexpected ink bounds %v", ink) }

	renderer.SetAlign(Top)
	if renderer.GetAlign() != (Top | Left) { t.Fatal("expected missing horizontal align to default to Left") }
}

func TestRendererStroke(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetFont(testFont)
	renderer.SetSize(48)
	paint := image.NewUniform(color.White)

	renderer.SetStrokeThickness(0)
	if renderer.GetStrokeThickness() != 0 { t.Fatal("expected stroke to be disabled") }
	target := image.NewRGBA(image.Rect(0, 0, 200, 100))
	renderer.DrawStroke(target, "O", 50, 70, paint)
	if countInk(target.Pix) != 0 { t.Fatal("expected disabled stroke to draw nothing") }

	renderer.SetStrokeThickness(2)
	if renderer.GetStrokeThickness() != 2 { t.Fatal("unexpected stroke thickness") }
	renderer.DrawStroke(target, "O", 50, 70, paint)
	stroked := countInk(target.Pix)
	if stroked == 0 { t.Fatal("expected stroke to draw something") }

	filled := image.NewRGBA(image.Rect(0, 0, 200, 100))
	renderer.Draw(filled, "O", 50, 70, paint)
	if inkBounds(target).Dx() <= inkBounds(filled).Dx() {
		t.Fatal("expected stroke to extend beyond the fill")
	}
}

func TestRendererDrawPreconditions(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetFont(testFont)
	target := image.NewRGBA(image.Rect(0, 0, 10, 10))
	paint := image.NewUniform(color.White)

	if doesNotPanic(func() { renderer.Draw(nil, "x", 0, 0, paint) }) {
		t.Fatal("expected nil target to panic")
	}
	if doesNotPanic(func() { renderer.Draw(target, "x", 0, 0, nil) }) {
		t.Fatal("expected nil paint to panic")
	}
	if !doesNotPanic(func() { renderer.Draw(nil, "", 0, 0, nil) }) {
		t.Fatal("expected empty text to return early")
	}
	if !doesNotPanic(func() { renderer.Draw(target, "\U0001F600", 5, 5, paint) }) {
		t.Fatal("drawing glyphs missing from the font panicked")
	}
}

func TestRendererCache(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetFont(testFont)
	renderer.SetSize(36)
	renderer.SetStrokeThickness(2)
	paint := image.NewUniform(color.White)

	uncached := image.NewRGBA(image.Rect(0, 0, 300, 80))
	renderer.Draw(uncached, "cache me", 10, 50, paint)
	renderer.DrawStroke(uncached, "cache me", 10, 50, paint)

	maskCache := cache.NewMaskCache(4*1024*1024)
	renderer.SetCache(maskCache)
	if renderer.GetCache() != maskCache { t.Fatal("unexpected cache") }
	for i := 0; i < 2; i++ {
		cached := image.NewRGBA(image.Rect(0, 0, 300, 80))
		renderer.Draw(cached, "cache me", 10, 50, paint)
		renderer.DrawStroke(cached, "cache me", 10, 50, paint)
		if !bytes.Equal(cached.Pix, uncached.Pix) { t.Fatalf("cached draw #%d differs from uncached draw", i) }
	}

	hits, misses := maskCache.Stats()
	if misses == 0 || hits < misses { t.Fatalf("unexpected cache stats: %d hits, %d misses", hits, misses) }
	if maskCache.Len() == 0 { t.Fatal("expected cached masks") }
}
