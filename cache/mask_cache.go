package cache

import "image"
import "math"
import "sync"
import "time"
import "math/rand/v2"

// The MaskCache stores rasterized glyph masks up to a fixed byte
// size. It is concurrent-safe, and evicts entries by sampling a
// few of them and removing the coldest one.
type MaskCache struct {
	masks map[Key]*entry
	mutex sync.RWMutex
	rng *rand.Rand
	clock func() uint32

	bytesLeft uint32
	lowestBytesLeft uint32
	byteSizeLimit uint32
	hits, misses uint64
}

// Creates a new cache bounded by the given size. Negative
// values will panic, and sizes above math.MaxUint32 are clamped.
func NewMaskCache(maxByteSize int) *MaskCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") }
	limit := uint32(min(uint64(maxByteSize), math.MaxUint32))
	start := time.Now()
	return &MaskCache{
		masks: make(map[Key]*entry, 128),
		rng: rand.New(rand.NewPCG(uint64(start.UnixNano()), 0x36285016_051A1E33)),
		clock: func() uint32 {
			// roughly hundredths of a second since creation
			return uint32(time.Since(start) >> 23)
		},
		bytesLeft: limit,
		lowestBytesLeft: limit,
		byteSizeLimit: limit,
	}
}

// Gets the mask associated to the given key. The mask may be nil
// even when found, for glyphs without contours.
func (self *MaskCache) Get(key Key) (*image.Alpha, bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	entry, found := self.masks[key]
	if !found {
		self.misses += 1
		return nil, false
	}
	self.hits += 1
	entry.hits.Add(1)
	return entry.mask, true
}

// Stores the given mask with the given key. Masks are expected
// to be immutable once passed. If the cache is full and no colder
// entry can be evicted, the mask is not stored.
func (self *MaskCache) Put(key Key, mask *image.Alpha) {
	const maxEvictionAttempts = 2

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, exists := self.masks[key]; exists { return }

	instant := self.clock()
	newEntry := &entry{ mask: mask, byteSize: MaskByteSize(mask), created: instant }
	newEntry.hits.Store(1)
	if newEntry.byteSize > self.byteSizeLimit { return }

	hotness := newEntry.hotness(instant)
	for attempt := 0; newEntry.byteSize > self.bytesLeft; attempt++ {
		if attempt >= maxEvictionAttempts { return }
		if !self.evictColderThan(hotness, instant) { return }
	}

	self.bytesLeft -= newEntry.byteSize
	self.lowestBytesLeft = min(self.lowestBytesLeft, self.bytesLeft)
	self.masks[key] = newEntry
}

// Removes the coldest entry among a small random sample, as long
// as it's colder than the given hotness. Must be called with the
// lock held.
func (self *MaskCache) evictColderThan(hotness uint32, instant uint32) bool {
	const sampleSize = 10

	var selectedKey Key
	lowestHotness := ^uint32(0)
	samplesTaken := 0
	skip := 0
	if len(self.masks) > sampleSize { skip = self.rng.IntN(len(self.masks) - sampleSize + 1) }
	for key, entry := range self.masks {
		if skip > 0 { skip -= 1 ; continue }
		currHotness := entry.hotness(instant)
		if currHotness < lowestHotness {
			lowestHotness = currHotness
			selectedKey = key
		}
		samplesTaken += 1
		if samplesTaken >= sampleSize { break }
	}

	if lowestHotness >= hotness { return false }
	self.bytesLeft += self.masks[selectedKey].byteSize
	delete(self.masks, selectedKey)
	return true
}

// Returns the number of bytes taken by the masks currently stored
// in the cache (approximate, see [MaskByteSize]()).
func (self *MaskCache) ByteSize() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return int(self.byteSizeLimit - self.bytesLeft)
}

// Returns the maximum number of bytes the cache has been filled
// with at any point of its life. Useful to figure out a reasonable
// capacity for a specific use-case.
func (self *MaskCache) PeakSize() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return int(self.byteSizeLimit - self.lowestBytesLeft)
}

// Returns the number of entries in the cache.
func (self *MaskCache) Len() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.masks)
}

// Returns the accumulated number of hits and misses.
func (self *MaskCache) Stats() (hits, misses uint64) {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.hits, self.misses
}
