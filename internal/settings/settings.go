// Package settings binds a textdust.Config to command line flags,
// shared by the textdust commands.
package settings

import "flag"
import "fmt"
import "log"
import "os"

import "github.com/tinne26/textdust"
import "github.com/tinne26/textdust/font"

// Flag values that can't be written to a config directly,
// as they need parsing or loading first.
type Settings struct {
	Text string
	config *textdust.Config
	fontPath string
	mode string
	gradient string
	stroke string
	verbose bool
}

// Registers flags for the given config on the flag set. Config
// values are used as defaults, so the config must be initialized
// beforehand. Call [Settings.Apply]() after parsing the flags.
func Bind(flags *flag.FlagSet, config *textdust.Config, defaultText string) *Settings {
	settings := &Settings{ config: config }
	flags.StringVar(&settings.Text, "text", defaultText, "initial text")
	flags.StringVar(&settings.fontPath, "font", "", "path to a .ttf or .otf font (default: Go Regular)")
	flags.Float64Var(&config.FontSize, "size", config.FontSize, "font size in pixels")
	flags.Float64Var(&config.LineHeight, "line-height", config.LineHeight, "distance between lines in pixels")
	flags.IntVar(&config.Gap, "gap", config.Gap, "particle sampling gap in pixels")
	flags.StringVar(&settings.mode, "mode", config.Mode.String(), "particle mode: 'repel' or 'ease'")
	flags.Float64Var(&config.PointerRadius, "radius", config.PointerRadius, "pointer influence radius in pixels")
	flags.StringVar(&settings.gradient, "gradient", "", "fill gradient stops, e.g. '0.3:red,0.5:fuchsia,0.7:purple'")
	flags.StringVar(&settings.stroke, "stroke", "white", "outline color, name or #RRGGBB")
	flags.Float64Var(&config.StrokeThickness, "stroke-width", config.StrokeThickness, "outline thickness (0 disables it)")
	flags.IntVar(&config.Workers, "workers", config.Workers, "goroutines used to update particles")
	flags.Uint64Var(&config.Seed, "seed", config.Seed, "random seed (0 for a random one)")
	flags.BoolVar(&settings.verbose, "v", false, "log resampling statistics to stderr")
	return settings
}

// Resolves the flags that need parsing and validates the config.
func (self *Settings) Apply() error {
	var err error
	self.config.Mode, err = textdust.ParseMode(self.mode)
	if err != nil { return err }

	if self.gradient != "" {
		self.config.GradientStops, err = textdust.ParseGradientStops(self.gradient)
		if err != nil { return err }
	}
	self.config.StrokeColor, err = textdust.ParseColor(self.stroke)
	if err != nil { return err }

	if self.fontPath != "" {
		loaded, name, err := font.ParseFromPath(self.fontPath)
		if err != nil { return fmt.Errorf("loading font: %w", err) }
		self.config.Font = loaded
		if self.verbose {
			family, err := font.GetFamily(loaded)
			if err != nil { family = "unknown" }
			log.Printf("using font %q (family %s)", name, family)
		}
	}

	if self.verbose {
		self.config.Logger = log.New(os.Stderr, "textdust: ", log.Ltime)
	}
	return self.config.Validate()
}
