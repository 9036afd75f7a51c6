package state

import "hearth/internal/model"

// Visit identifies one stay on a screen. Work started during a visit must
// check Active before writing its result anywhere.
type Visit struct {
	Screen     model.Screen
	generation uint64
}

// Visit returns a token for the current screen visit.
func (c *Container) Visit() Visit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Visit{Screen: c.session.Screen, generation: c.generation}
}

// Active reports whether v is still the current visit. Navigate, Logout and
// SelectUser end the visit.
func (c *Container) Active(v Visit) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return v.generation == c.generation && v.Screen == c.session.Screen
}

// Alive returns a func reporting whether v is still active.
func (c *Container) Alive(v Visit) func() bool {
	return func() bool { return c.Active(v) }
}
