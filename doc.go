// textdust is a package to render text as a field of small square
// particles that rise into place, get pushed around by a pointer and
// settle back with a spring-like motion.
//
// Common usage only requires a [Field]. First you create it with a
// [Config] and the size of your drawing area:
//   field, err := textdust.NewField(textdust.DefaultConfig(), 800, 600)
//   if err != nil { ... }
//   field.SetText("Hello How are you")
//
// Then, on every frame, you forward the latest pointer position and
// tick the simulation on a [Surface]:
//   field.SetPointer(cursorX, cursorY)
//   field.Tick(surface)
//
// Text is first painted with a gradient fill and a white outline onto
// an offscreen [Canvas]. The painted pixels are then sampled on a grid
// with the configured gap, and each opaque sample becomes a [Particle]
// whose target is the sampled pixel. Whenever the text changes or the
// field is resized, the whole particle [Batch] is rebuilt and swapped
// atomically.
package textdust
