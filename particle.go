package textdust

import "math"
import "image/color"

// A single square of the field. The origin, color, size, friction
// and ease are fixed at creation. Only the position and the velocity
// change with each update.
type Particle struct {
	X, Y float64
	VX, VY float64

	originX, originY float64
	size float64
	friction float64
	ease float64
	color color.RGBA
}

func newParticle(x, y float64, target Target, size, friction, ease float64) Particle {
	return Particle{
		X: x, Y: y,
		originX: float64(target.X),
		originY: float64(target.Y),
		size: size,
		friction: friction,
		ease: ease,
		color: target.Color,
	}
}

// Returns the target position of the particle.
func (self *Particle) Origin() (x, y float64) { return self.originX, self.originY }
func (self *Particle) Size() float64 { return self.size }
func (self *Particle) Friction() float64 { return self.friction }
func (self *Particle) Ease() float64 { return self.ease }
func (self *Particle) Color() color.RGBA { return self.color }

// Inputs shared by all particle updates within a single tick.
type Step struct {
	Pointer PointerState
	Mode Mode
	MinDistance float64
}

// Advances the particle by one tick.
//
// In [ModeRepel], a pointer within its radius pushes the particle
// away, the velocity is damped by the particle's friction and the
// position eases back towards the origin. In [ModeEase], only the
// ease term applies.
func (self *Particle) Update(step Step) {
	if step.Mode == ModeEase {
		self.X += (self.originX - self.X)*self.ease
		self.Y += (self.originY - self.Y)*self.ease
		return
	}

	pointer := step.Pointer
	if pointer.Active && pointer.Radius > 0 {
		dx, dy := pointer.X - self.X, pointer.Y - self.Y
		distance := math.Hypot(dx, dy)
		if distance < pointer.Radius {
			force := RepulsionForce(distance, pointer.Radius, step.MinDistance)
			angle := math.Atan2(dy, dx)
			self.VX += force*math.Cos(angle)
			self.VY += force*math.Sin(angle)
		}
	}

	self.VX *= self.friction
	self.VY *= self.friction
	self.X += self.VX + (self.originX - self.X)*self.ease
	self.Y += self.VY + (self.originY - self.Y)*self.ease
}

// Draws the particle as a square at its current position.
func (self *Particle) Draw(surface Surface) {
	surface.FillRect(self.X, self.Y, self.size, self.size, self.color)
}

// Returns the signed repulsion force for a particle at the given
// distance from the pointer. The result is negative (pointing away
// from the pointer) and grows as the distance shrinks, but distances
// below minDistance are clamped to it, so the force stays finite.
func RepulsionForce(distance, radius, minDistance float64) float64 {
	if minDistance <= 0 { panic("minDistance must be positive") }
	if distance < minDistance || math.IsNaN(distance) { distance = minDistance }
	return -radius/distance
}
