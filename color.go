package textdust

import "fmt"
import "strconv"
import "strings"
import "image/color"

import "github.com/lucasb-eyer/go-colorful"

// A few CSS named colors, enough for the default gradient and
// outline. Anything else can be given in hex form.
var namedColors = map[string]color.RGBA {
	"black"  : {0, 0, 0, 255},
	"white"  : {255, 255, 255, 255},
	"red"    : {255, 0, 0, 255},
	"fuchsia": {255, 0, 255, 255},
	"purple" : {128, 0, 128, 255},
	"yellow" : {255, 255, 0, 255},
	"cyan"   : {0, 255, 255, 255},
	"blue"   : {0, 0, 255, 255},
}

// Parses a named color (e.g. "fuchsia") or a hex color in "#RRGGBB"
// or "#RGB" form. The result is always opaque.
func ParseColor(value string) (color.RGBA, error) {
	named, found := namedColors[strings.ToLower(value)]
	if found { return named, nil }

	hex, err := colorful.Hex(value)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, value)
	}
	r, g, b := hex.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

// Parses a comma separated list of "offset:color" gradient stops,
// like "0.3:red,0.5:fuchsia,0.7:#800080".
func ParseGradientStops(value string) ([]GradientStop, error) {
	if value == "" { return nil, nil }
	parts := strings.Split(value, ",")
	stops := make([]GradientStop, 0, len(parts))
	for _, part := range parts {
		offsetStr, colorStr, found := strings.Cut(strings.TrimSpace(part), ":")
		if !found {
			return nil, fmt.Errorf("%w: gradient stop %q must be offset:color", ErrInvalidConfig, part)
		}
		offset, err := strconv.ParseFloat(offsetStr, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: gradient stop offset %q: %v", ErrInvalidConfig, offsetStr, err)
		}
		clr, err := ParseColor(colorStr)
		if err != nil { return nil, err }
		stops = append(stops, GradientStop{ Offset: offset, Color: clr })
	}
	return stops, nil
}
