package textdust

import "log"
import "errors"
import "fmt"
import "math"
import "image/color"

import "golang.org/x/image/font/sfnt"

// Returned (wrapped) by [Config.Validate]() and [NewField]()
// when some configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Particle update modes. See [Particle.Update]().
type Mode uint8
const (
	ModeRepel Mode = iota // pointer repulsion, friction and ease return
	ModeEase              // ease return only, pointer ignored
)

func (self Mode) String() string {
	switch self {
	case ModeRepel: return "repel"
	case ModeEase : return "ease"
	default:
		return "UnknownMode"
	}
}

// Parses "repel" or "ease" into a [Mode].
func ParseMode(value string) (Mode, error) {
	switch value {
	case "repel": return ModeRepel, nil
	case "ease" : return ModeEase, nil
	default:
		return ModeRepel, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, value)
	}
}

// Configuration for a [Field]. Use [DefaultConfig]() as the starting
// point and adjust only what you need.
type Config struct {
	// Font used to paint the text. If nil, the bundled
	// Go Regular font is used.
	Font *sfnt.Font

	FontSize float64   // in pixels
	LineHeight float64 // distance between consecutive line centers
	MaxWidthFactor float64 // max text width relative to the field width

	// Sampling grid stride. Each particle is a Gap x Gap square.
	Gap int

	Mode Mode
	PointerRadius float64
	// Distances below this value are clamped when computing the
	// repulsion force, so a pointer right on top of a particle
	// still produces a finite push.
	MinDistance float64

	// Per-particle coefficients are drawn uniformly from [min, max).
	FrictionMin, FrictionMax float64
	EaseMin, EaseMax float64

	GradientStops []GradientStop
	StrokeColor color.Color
	StrokeThickness float64 // zero disables the outline

	// Byte size of the glyph mask cache. Zero disables caching.
	CacheSize int

	// Random seed for particle spawning. Zero means a random seed.
	Seed uint64

	// Number of goroutines used to update particles on each tick.
	// Values <= 1 update sequentially.
	Workers int

	// Optional logger for resampling statistics.
	Logger *log.Logger
}

// Returns the default configuration, matching the classic
// look of the effect: 100px text, 80px line height, gap 3.
func DefaultConfig() Config {
	return Config{
		FontSize: 100,
		LineHeight: 80,
		MaxWidthFactor: 0.8,
		Gap: 3,
		Mode: ModeRepel,
		PointerRadius: 140,
		MinDistance: 1,
		FrictionMin: 0.15,
		FrictionMax: 0.75,
		EaseMin: 0.005,
		EaseMax: 0.105,
		GradientStops: DefaultGradientStops(),
		StrokeColor: color.RGBA{255, 255, 255, 255},
		StrokeThickness: 3,
		CacheSize: 4*1024*1024,
		Workers: 1,
	}
}

// Returns an error wrapping [ErrInvalidConfig] if any of the
// configuration values is out of range.
func (self *Config) Validate() error {
	if self.FontSize <= 0 {
		return fmt.Errorf("%w: font size must be positive (got %g)", ErrInvalidConfig, self.FontSize)
	}
	if self.LineHeight < 0 {
		return fmt.Errorf("%w: line height can't be negative (got %g)", ErrInvalidConfig, self.LineHeight)
	}
	if self.MaxWidthFactor <= 0 {
		return fmt.Errorf("%w: max width factor must be positive (got %g)", ErrInvalidConfig, self.MaxWidthFactor)
	}
	if self.Gap < 1 {
		return fmt.Errorf("%w: gap must be >= 1 (got %d)", ErrInvalidConfig, self.Gap)
	}
	if self.Mode != ModeRepel && self.Mode != ModeEase {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidConfig, self.Mode)
	}
	if self.PointerRadius < 0 {
		return fmt.Errorf("%w: pointer radius can't be negative (got %g)", ErrInvalidConfig, self.PointerRadius)
	}
	if self.MinDistance <= 0 {
		return fmt.Errorf("%w: min distance must be positive (got %g)", ErrInvalidConfig, self.MinDistance)
	}
	if self.FrictionMin <= 0 || self.FrictionMax >= 1 || self.FrictionMin > self.FrictionMax {
		return fmt.Errorf("%w: friction range must satisfy 0 < min <= max < 1 (got [%g, %g])", ErrInvalidConfig, self.FrictionMin, self.FrictionMax)
	}
	if self.EaseMin <= 0 || self.EaseMax > 1 || self.EaseMin > self.EaseMax {
		return fmt.Errorf("%w: ease range must satisfy 0 < min <= max <= 1 (got [%g, %g])", ErrInvalidConfig, self.EaseMin, self.EaseMax)
	}
	if self.StrokeThickness != 0 && (self.StrokeThickness < 0.5 || self.StrokeThickness > 64) {
		return fmt.Errorf("%w: stroke thickness must be 0 or in [0.5, 64] (got %g)", ErrInvalidConfig, self.StrokeThickness)
	}
	if self.StrokeThickness != 0 && self.StrokeColor == nil {
		return fmt.Errorf("%w: stroke color required", ErrInvalidConfig)
	}
	if self.CacheSize < 0 {
		return fmt.Errorf("%w: cache size can't be negative (got %d)", ErrInvalidConfig, self.CacheSize)
	}
	if uint64(self.CacheSize) > math.MaxUint32 {
		return fmt.Errorf("%w: cache size can't exceed %d bytes (got %d)", ErrInvalidConfig, uint64(math.MaxUint32), self.CacheSize)
	}
	if self.Workers < 0 {
		return fmt.Errorf("%w: workers can't be negative (got %d)", ErrInvalidConfig, self.Workers)
	}
	prevOffset := 0.0
	for i, stop := range self.GradientStops {
		if stop.Offset < prevOffset || stop.Offset > 1 {
			return fmt.Errorf("%w: gradient stop #%d offset %g out of order or range", ErrInvalidConfig, i, stop.Offset)
		}
		if stop.Color == nil {
			return fmt.Errorf("%w: gradient stop #%d without color", ErrInvalidConfig, i)
		}
		prevOffset = stop.Offset
	}
	return nil
}
