package font

import "sync"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"

var defaultFont *sfnt.Font
var defaultErr error
var defaultOnce sync.Once

// Returns the Go Regular font bundled with golang.org/x/image.
// The font is parsed only once, the same *sfnt.Font is returned
// on every call.
func Default() (*sfnt.Font, error) {
	defaultOnce.Do(func() {
		defaultFont, _, defaultErr = ParseFromBytes(goregular.TTF)
	})
	return defaultFont, defaultErr
}
