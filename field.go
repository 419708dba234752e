package textdust

import "fmt"
import "sync/atomic"

import "golang.org/x/sync/errgroup"

import "github.com/tinne26/textdust/font"
import "github.com/tinne26/textdust/cache"

// The Field holds the text, the offscreen canvas the text is painted
// on, and the current particle batch derived from it.
//
// Text, resize and tick calls must all come from the same goroutine.
// Pointer updates are safe from any goroutine.
type Field struct {
	config Config
	width, height int
	canvas *Canvas
	rasterizer *TextRasterizer
	spawner *Spawner
	batch atomic.Pointer[Batch]
	pointer Pointer

	text string
	lines []string
	anchorX float64
	maxTextWidth float64
}

// Creates a new field with the given config and dimensions.
// The config is validated, and the default font is loaded if
// the config doesn't specify one. The field starts with no text
// and an inactive pointer.
func NewField(config Config, width, height int) (*Field, error) {
	err := config.Validate()
	if err != nil { return nil, err }
	if config.Font == nil {
		config.Font, err = font.Default()
		if err != nil { return nil, fmt.Errorf("loading default font: %w", err) }
	}

	renderer := NewRenderer()
	renderer.SetFont(config.Font)
	if config.CacheSize > 0 {
		renderer.SetCache(cache.NewMaskCache(config.CacheSize))
	}
	field := &Field{
		config: config,
		rasterizer: NewTextRasterizer(renderer, config.GradientStops, config.StrokeColor, config.StrokeThickness),
		spawner: NewSpawner(&config),
	}
	field.pointer.Clear()
	field.Resize(width, height)
	return field, nil
}

// Replaces the current text and rebuilds the particle batch.
func (self *Field) SetText(text string) {
	self.text = text
	self.rebuild()
}

// Handles a key release from the text input source. Releasing
// the space key is ignored, any other key sets the given text.
func (self *Field) KeyUp(key rune, text string) {
	if key == ' ' { return }
	self.SetText(text)
}

// Resizes the field. The text anchor and the max text width are
// recomputed, and the text is painted and sampled again from
// scratch. Negative sizes are treated as zero.
func (self *Field) Resize(width, height int) {
	if width  < 0 { width  = 0 }
	if height < 0 { height = 0 }
	self.width, self.height = width, height
	self.canvas = NewCanvas(width, height)
	self.anchorX = float64(width)/2
	self.maxTextWidth = float64(width)*self.config.MaxWidthFactor
	self.rebuild()
}

// Stores the latest pointer position. Safe to call from any goroutine.
func (self *Field) SetPointer(x, y float64) { self.pointer.Set(x, y) }

// Deactivates the pointer, e.g. when it leaves the field.
func (self *Field) ClearPointer() { self.pointer.Clear() }

// Returns the pointer state that the next update would use.
func (self *Field) Pointer() PointerState {
	return self.pointer.Snapshot(self.config.PointerRadius)
}

// Updates all the particles of the current batch by one tick.
func (self *Field) Update() {
	self.update(self.batch.Load())
}

// Draws all the particles of the current batch on the target.
func (self *Field) Draw(target Surface) {
	self.batch.Load().Draw(target)
}

// Clears the target, then updates and draws every particle.
// The batch is loaded only once, so a concurrent swap never
// mixes two batches within the same tick.
func (self *Field) Tick(target Surface) {
	if target == nil { panic("can't tick on nil surface") }
	target.ClearRect(target.Bounds())
	batch := self.batch.Load()
	self.update(batch)
	batch.Draw(target)
}

// Returns the current particle batch. May be nil before any
// text has been set.
func (self *Field) Batch() *Batch { return self.batch.Load() }

// Returns the current text.
func (self *Field) Text() string { return self.text }

// Returns the wrapped lines of the current text.
func (self *Field) Lines() []string { return self.lines }

// Returns the offscreen canvas the text is painted on. It's
// cleared after every resample.
func (self *Field) Canvas() *Canvas { return self.canvas }

// Returns the field dimensions.
func (self *Field) Size() (width, height int) { return self.width, self.height }

// Returns the field config. Notice that the font will be set even
// if the original config didn't have one.
func (self *Field) Config() Config { return self.config }

// ---- internal ----

// Paints the text on a clean canvas, resamples it and publishes
// the new batch.
func (self *Field) rebuild() {
	self.canvas.Clear()
	self.lines = self.rasterizer.Paint(self.canvas.Target(), self.text, Layout{
		FontSize: self.config.FontSize,
		LineHeight: self.config.LineHeight,
		MaxWidth: self.maxTextWidth,
		AnchorX: self.anchorX,
		CenterY: float64(self.height)/2,
	})
	batch := Resample(self.canvas, self.config.Gap, self.spawner)
	self.batch.Store(batch)

	if self.config.Logger != nil {
		self.config.Logger.Printf(
			"resampled %dx%d field: %d lines, %d particles (gap %d)",
			self.width, self.height, len(self.lines), batch.Len(), self.config.Gap,
		)
		maskCache := self.rasterizer.Renderer().GetCache()
		if maskCache != nil {
			hits, misses := maskCache.Stats()
			self.config.Logger.Printf(
				"glyph cache: %d masks, %d KiB (peak %d KiB), %d hits, %d misses",
				maskCache.Len(), maskCache.ByteSize()/1024, maskCache.PeakSize()/1024, hits, misses,
			)
		}
	}
}

// Minimum number of particles per goroutine when updating in parallel.
const minChunkSize = 1024

func (self *Field) update(batch *Batch) {
	count := batch.Len()
	if count == 0 { return }
	step := Step{
		Pointer: self.pointer.Snapshot(self.config.PointerRadius),
		Mode: self.config.Mode,
		MinDistance: self.config.MinDistance,
	}

	workers := self.config.Workers
	if workers <= 1 || count < minChunkSize*2 {
		batch.updateRange(step, 0, count)
		return
	}

	chunkSize := max((count + workers - 1)/workers, minChunkSize)
	var group errgroup.Group
	group.SetLimit(workers)
	for start := 0; start < count; start += chunkSize {
		end := min(start + chunkSize, count)
		group.Go(func() error {
			batch.updateRange(step, start, end)
			return nil
		})
	}
	_ = group.Wait() // updates can't fail
}

