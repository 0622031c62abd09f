// Package disjointset implements a disjoint-set (union-find) structure over
// any comparable element type.
//
// A DisjointSet is not safe for concurrent use. Even read-only queries
// compress paths internally, so callers sharing one instance between
// goroutines must synchronize every call, or use Synced instead.
package disjointset

import (
	"fmt"
	"maps"
)

// DisjointSet partitions registered elements into disjoint segments.
// The zero value is an empty set ready to use.
//
// Elements live in an arena: each one is assigned a slot, and parent links
// are slot indices into the same arena.
type DisjointSet[E comparable] struct {
	index  map[E]int
	elems  []E
	parent []int
	size   []int // only meaningful at roots
	count  int   // number of segments
	merges int
}

// New creates a DisjointSet where each of elems is its own segment.
// Duplicates are ignored.
func New[E comparable](elems ...E) *DisjointSet[E] {
	return NewWithConfig(Config{}, elems...)
}

// NewWithConfig creates a DisjointSet using cfg, registering elems as singletons.
func NewWithConfig[E comparable](cfg Config, elems ...E) *DisjointSet[E] {
	cfg.applyDefaults()
	capacity := max(cfg.Capacity, len(elems))

	d := &DisjointSet[E]{
		index:  make(map[E]int, capacity),
		elems:  make([]E, 0, capacity),
		parent: make([]int, 0, capacity),
		size:   make([]int, 0, capacity),
	}
	d.Add(elems...)
	return d
}

// Add registers each element as a singleton segment. Elements that are
// already registered keep their current segment.
func (d *DisjointSet[E]) Add(elems ...E) *DisjointSet[E] {
	for _, e := range elems {
		d.add(e)
	}
	return d
}

// AddGroup merges first and every element of rest into one segment,
// registering any element not seen before. It returns d for chaining.
func (d *DisjointSet[E]) AddGroup(first E, rest ...E) *DisjointSet[E] {
	anchor := d.add(first)
	for _, e := range rest {
		d.union(anchor, d.add(e))
	}
	return d
}

// Contains reports whether e has been registered.
func (d *DisjointSet[E]) Contains(e E) bool {
	_, ok := d.index[e]
	return ok
}

// Find returns the representative of the segment holding e.
// The second result is false if e is not registered.
func (d *DisjointSet[E]) Find(e E) (E, bool) {
	i, ok := d.index[e]
	if !ok {
		var zero E
		return zero, false
	}
	return d.elems[d.findRoot(i)], true
}

// Connected reports whether a and b are registered and share a segment.
func (d *DisjointSet[E]) Connected(a, b E) bool {
	i, ok := d.index[a]
	if !ok {
		return false
	}
	j, ok := d.index[b]
	if !ok {
		return false
	}
	return d.findRoot(i) == d.findRoot(j)
}

// Len returns the number of registered elements.
func (d *DisjointSet[E]) Len() int {
	return len(d.elems)
}

// Count returns the number of segments.
func (d *DisjointSet[E]) Count() int {
	return d.count
}

// Clone returns an independent copy of d.
func (d *DisjointSet[E]) Clone() *DisjointSet[E] {
	c := &DisjointSet[E]{
		index:  maps.Clone(d.index),
		elems:  append([]E(nil), d.elems...),
		parent: append([]int(nil), d.parent...),
		size:   append([]int(nil), d.size...),
		count:  d.count,
		merges: d.merges,
	}
	return c
}

// add registers e if needed and returns its slot.
func (d *DisjointSet[E]) add(e E) int {
	if i, ok := d.index[e]; ok {
		return i
	}
	if d.index == nil {
		d.index = make(map[E]int)
	}
	i := len(d.elems)
	d.index[e] = i
	d.elems = append(d.elems, e)
	d.parent = append(d.parent, i)
	d.size = append(d.size, 1)
	d.count++
	return i
}

// findRoot walks to the root of i, then points every slot on the path
// directly at it.
func (d *DisjointSet[E]) findRoot(i int) int {
	if i < 0 || i >= len(d.parent) {
		panic(fmt.Sprintf("disjointset: slot %d out of range [0, %d)", i, len(d.parent)))
	}

	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}

	for i != root {
		next := d.parent[i]
		d.parent[i] = root
		i = next
	}
	return root
}

// union merges the segments of slots x and y by size. On a tie the root of
// y goes under the root of x.
func (d *DisjointSet[E]) union(x, y int) {
	rootX := d.findRoot(x)
	rootY := d.findRoot(y)
	if rootX == rootY {
		return
	}

	if d.size[rootX] < d.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	d.parent[rootY] = rootX
	d.size[rootX] += d.size[rootY]
	d.count--
	d.merges++
}
