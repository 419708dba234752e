package textdust

import "image/color"
import "math/rand/v2"

// A sampled opaque pixel: the origin and color of a future particle.
type Target struct {
	X, Y int
	Color color.RGBA
}

// Scans an RGBA8 row-major pixel buffer on a gap x gap grid
// starting at (0, 0), and returns a target for every sampled
// pixel with non-zero alpha. Targets are ordered by row, then
// by column. The color is the sampled RGB made opaque.
func SampleTargets(pixels []byte, width, height, gap int) []Target {
	if gap < 1 { panic("gap must be >= 1") }
	if len(pixels) < width*height*4 { panic("pixel buffer too small for the given dimensions") }

	var targets []Target
	for y := 0; y < height; y += gap {
		for x := 0; x < width; x += gap {
			index := (y*width + x)*4
			if pixels[index + 3] == 0 { continue }
			targets = append(targets, Target{
				X: x, Y: y,
				Color: color.RGBA{pixels[index], pixels[index + 1], pixels[index + 2], 255},
			})
		}
	}
	return targets
}

// A Batch is the full set of particles derived from a single
// rasterization. Batches are never resized: when the text or the
// field dimensions change, a new batch replaces the old one.
type Batch struct {
	particles []Particle
	gap int
}

// Returns the number of particles in the batch. Nil batches are empty.
func (self *Batch) Len() int {
	if self == nil { return 0 }
	return len(self.particles)
}

// Returns the sampling gap the batch was created with.
func (self *Batch) Gap() int { return self.gap }

// Returns the i-th particle of the batch.
func (self *Batch) At(i int) *Particle { return &self.particles[i] }

// Calls fn for every particle of the batch, in order.
func (self *Batch) Each(fn func(*Particle)) {
	if self == nil { return }
	for i := range self.particles {
		fn(&self.particles[i])
	}
}

// Returns the targets of all the particles in the batch.
func (self *Batch) Targets() []Target {
	if self == nil { return nil }
	targets := make([]Target, len(self.particles))
	for i := range self.particles {
		particle := &self.particles[i]
		targets[i] = Target{
			X: int(particle.originX),
			Y: int(particle.originY),
			Color: particle.color,
		}
	}
	return targets
}

// Draws all the particles of the batch on the given surface.
func (self *Batch) Draw(surface Surface) {
	if self == nil { return }
	for i := range self.particles {
		self.particles[i].Draw(surface)
	}
}

// Updates the particles in the [start, end) range.
func (self *Batch) updateRange(step Step, start, end int) {
	for i := start; i < end; i++ {
		self.particles[i].Update(step)
	}
}

// The Spawner creates particle batches, drawing their random
// start positions and coefficients.
type Spawner struct {
	rng *rand.Rand
	frictionMin, frictionMax float64
	easeMin, easeMax float64
}

// Creates a new spawner from the friction and ease ranges of
// the given config. A zero config seed uses a random seed.
func NewSpawner(config *Config) *Spawner {
	seed := config.Seed
	if seed == 0 { seed = rand.Uint64() }
	return &Spawner{
		rng: rand.New(rand.NewPCG(seed, seed ^ 0x9E3779B97F4A7C15)),
		frictionMin: config.FrictionMin,
		frictionMax: config.FrictionMax,
		easeMin: config.EaseMin,
		easeMax: config.EaseMax,
	}
}

// Creates a new batch with one particle per target. Particles
// start at a random x along the bottom edge (y = height).
func (self *Spawner) Spawn(targets []Target, gap, width, height int) *Batch {
	batch := &Batch{ particles: make([]Particle, len(targets)), gap: gap }
	for i, target := range targets {
		x := self.rng.Float64()*float64(width)
		friction := self.uniform(self.frictionMin, self.frictionMax)
		ease := self.uniform(self.easeMin, self.easeMax)
		batch.particles[i] = newParticle(x, float64(height), target, float64(gap), friction, ease)
	}
	return batch
}

func (self *Spawner) uniform(min, max float64) float64 {
	return min + self.rng.Float64()*(max - min)
}

// Reads back the whole surface, samples it with the given gap,
// spawns a new batch from the sampled pixels and finally clears
// the surface, so only particles remain visible.
func Resample(surface PixelSurface, gap int, spawner *Spawner) *Batch {
	if surface == nil { panic("can't resample nil surface") }
	if spawner == nil { panic("can't resample with nil spawner") }

	bounds := surface.Bounds()
	pixels := surface.ReadPixels(bounds)
	surface.ClearRect(bounds)
	targets := SampleTargets(pixels, bounds.Dx(), bounds.Dy(), gap)
	for i := range targets {
		targets[i].X += bounds.Min.X
		targets[i].Y += bounds.Min.Y
	}
	return spawner.Spawn(targets, gap, bounds.Dx(), bounds.Dy())
}
