package core

// FrameCache keeps values built while drawing a frame. Entries not used
// since the previous Sweep are released, so per-score text images do not
// pile up.
type FrameCache[V any] struct {
	entries map[string]*frameEntry[V]
	release func(V)
}

type frameEntry[V any] struct {
	value V
	used  bool
}

// NewFrameCache creates a cache. release may be nil.
func NewFrameCache[V any](release func(V)) *FrameCache[V] {
	return &FrameCache[V]{
		entries: make(map[string]*frameEntry[V]),
		release: release,
	}
}

// Get returns the value for key, building it on first use.
func (c *FrameCache[V]) Get(key string, build func() V) V {
	e, ok := c.entries[key]
	if !ok {
		e = &frameEntry[V]{value: build()}
		c.entries[key] = e
	}
	e.used = true
	return e.value
}

// Sweep releases every entry not used since the last Sweep. Call it once
// per frame.
func (c *FrameCache[V]) Sweep() {
	for key, e := range c.entries {
		if e.used {
			e.used = false
			continue
		}
		if c.release != nil {
			c.release(e.value)
		}
		delete(c.entries, key)
	}
}

// Len returns the number of cached entries.
func (c *FrameCache[V]) Len() int {
	return len(c.entries)
}
