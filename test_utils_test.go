package textdust

import "log"
import "image"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/textdust/font"

var testFont *sfnt.Font
func init() {
	var err error
	testFont, err = font.Default()
	if err != nil { log.Fatal(err) }
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

// Returns the bounds of the pixels with non-zero alpha.
func inkBounds(img *image.RGBA) image.Rectangle {
	var bounds image.Rectangle
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			if img.RGBAAt(x, y).A == 0 { continue }
			bounds = bounds.Union(image.Rect(x, y, x + 1, y + 1))
		}
	}
	return bounds
}

func countInk(pixels []byte) int {
	var count int
	for i := 3; i < len(pixels); i += 4 {
		if pixels[i] != 0 { count += 1 }
	}
	return count
}
