package disjointset

import "sync"

// Synced is a DisjointSet guarded by a lock, for sharing between goroutines.
//
// Queries that resolve roots compress paths, so they take the write lock.
type Synced[E comparable] struct {
	set  *DisjointSet[E]
	lock sync.RWMutex
}

// NewSynced creates a Synced where each of elems is its own segment.
func NewSynced[E comparable](elems ...E) *Synced[E] {
	return &Synced[E]{set: New(elems...)}
}

// Wrap takes ownership of d. The caller must not use d afterwards.
func Wrap[E comparable](d *DisjointSet[E]) *Synced[E] {
	if d == nil {
		d = New[E]()
	}
	return &Synced[E]{set: d}
}

// Add registers each element as a singleton segment.
func (s *Synced[E]) Add(elems ...E) *Synced[E] {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.set.Add(elems...)
	return s
}

// AddGroup merges first and rest into one segment. It returns s for chaining.
func (s *Synced[E]) AddGroup(first E, rest ...E) *Synced[E] {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.set.AddGroup(first, rest...)
	return s
}

// Find returns the representative of the segment holding e.
func (s *Synced[E]) Find(e E) (E, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.set.Find(e)
}

// Connected reports whether a and b share a segment.
func (s *Synced[E]) Connected(a, b E) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.set.Connected(a, b)
}

// Segments returns the current partition.
func (s *Synced[E]) Segments() [][]E {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.set.Segments()
}

// Contains reports whether e has been registered.
func (s *Synced[E]) Contains(e E) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.set.Contains(e)
}

// Elements returns every registered element.
func (s *Synced[E]) Elements() []E {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.set.Elements()
}

// Len returns the number of registered elements.
func (s *Synced[E]) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.set.Len()
}

// Count returns the number of segments.
func (s *Synced[E]) Count() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.set.Count()
}

// Snapshot returns an independent, unsynchronized copy of the current state.
func (s *Synced[E]) Snapshot() *DisjointSet[E] {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.set.Clone()
}

// String renders the current partition.
func (s *Synced[E]) String() string {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.set.String()
}
