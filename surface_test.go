package textdust

import "image"
import "image/color"
import "testing"

func TestCanvasFillAndClear(t *testing.T) {
	canvas := NewCanvas(10, 8)
	if canvas.Bounds() != image.Rect(0, 0, 10, 8) { t.Fatalf("unexpected bounds %v", canvas.Bounds()) }

	green := color.RGBA{0, 200, 0, 255}
	canvas.FillRect(2.7, 3.2, 3, 3, green)
	for y := 0; y < 8; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 3 && y < 6
			got := canvas.Image().RGBAAt(x, y)
			if inside && got != green { t.Fatalf("expected green at (%d, %d), got %v", x, y, got) }
			if !inside && got.A != 0 { t.Fatalf("expected transparent at (%d, %d), got %v", x, y, got) }
		}
	}

	canvas.ClearRect(image.Rect(3, 0, 100, 100))
	if canvas.Image().RGBAAt(2, 3) != green { t.Fatal("clear went beyond its rect") }
	if canvas.Image().RGBAAt(3, 3).A != 0 { t.Fatal("expected cleared pixel") }

	canvas.Clear()
	if countInk(canvas.Image().Pix) != 0 { t.Fatal("expected empty canvas after Clear()") }

	// out of bounds fills are clipped
	canvas.FillRect(-5, -5, 6, 6, green)
	if countInk(canvas.Image().Pix) != 1 { t.Fatal("expected a single clipped pixel") }
	canvas.FillRect(50, 50, 3, 3, green)
	if countInk(canvas.Image().Pix) != 1 { t.Fatal("expected out of bounds fill to be ignored") }
}

func TestCanvasTranslucentFill(t *testing.T) {
	canvas := NewCanvas(2, 2)
	canvas.FillRect(0, 0, 1, 1, color.RGBA{0, 0, 128, 128})
	got := canvas.Image().RGBAAt(0, 0)
	if got != (color.RGBA{0, 0, 128, 128}) { t.Fatalf("unexpected color %v", got) }
}

func TestCanvasReadPixelsStraightAlpha(t *testing.T) {
	canvas := NewCanvas(3, 1)
	canvas.FillRect(0, 0, 1, 1, color.NRGBA{255, 255, 255, 128})
	canvas.FillRect(1, 0, 1, 1, color.NRGBA{200, 100, 0, 64})

	stored := canvas.Image().RGBAAt(0, 0)
	if stored != (color.RGBA{128, 128, 128, 128}) { t.Fatalf("expected premultiplied storage, got %v", stored) }

	pixels := canvas.ReadPixels(canvas.Bounds())
	expected := []byte{255, 255, 255, 128}
	for i, value := range expected {
		if pixels[i] != value { t.Fatalf("expected first pixel %v, got %v", expected, pixels[0 : 4]) }
	}

	// rounding on lower alphas stays within one unit
	second := pixels[4 : 8]
	if second[3] != 64 { t.Fatalf("expected alpha 64, got %d", second[3]) }
	if second[0] < 199 || second[0] > 201 || second[1] < 99 || second[1] > 101 || second[2] != 0 {
		t.Fatalf("unexpected straight color %v", second)
	}

	// transparent pixels stay zeroed
	if pixels[8] != 0 || pixels[9] != 0 || pixels[10] != 0 || pixels[11] != 0 {
		t.Fatalf("expected transparent pixel, got %v", pixels[8 : 12])
	}
}

func TestCanvasReadPixels(t *testing.T) {
	canvas := NewCanvas(4, 4)
	canvas.FillRect(1, 1, 1, 1, color.RGBA{10, 20, 30, 255})

	pixels := canvas.ReadPixels(canvas.Bounds())
	if len(pixels) != 4*4*4 { t.Fatalf("unexpected buffer length %d", len(pixels)) }
	index := (1*4 + 1)*4
	if pixels[index] != 10 || pixels[index + 1] != 20 || pixels[index + 2] != 30 || pixels[index + 3] != 255 {
		t.Fatalf("unexpected pixel %v", pixels[index : index + 4])
	}

	// clipped read
	pixels = canvas.ReadPixels(image.Rect(1, 1, 10, 10))
	if len(pixels) != 3*3*4 { t.Fatalf("unexpected clipped buffer length %d", len(pixels)) }
	if pixels[3] != 255 { t.Fatal("expected clipped read to start at (1, 1)") }

	// reads are copies
	pixels[0] = 99
	if canvas.Image().RGBAAt(1, 1).R != 10 { t.Fatal("expected ReadPixels to return a copy") }

	if NewCanvas(-3, 2).ReadPixels(image.Rect(0, 0, 5, 5)) != nil {
		t.Fatal("expected nil pixels for empty canvas")
	}
}
