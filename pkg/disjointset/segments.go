package disjointset

import (
	"fmt"
	"strings"
)

// Stats summarizes the shape of a DisjointSet.
type Stats struct {
	// Elements is the number of registered elements
	Elements int

	// Segments is the number of disjoint segments
	Segments int

	// Largest is the size of the biggest segment, 0 when empty
	Largest int

	// Merges is the number of unions that joined two distinct segments
	Merges int
}

// Elements returns every registered element once, in no guaranteed order.
func (d *DisjointSet[E]) Elements() []E {
	return append([]E(nil), d.elems...)
}

// Segments returns the current partition. Neither the order of segments nor
// the order of elements within a segment is guaranteed.
func (d *DisjointSet[E]) Segments() [][]E {
	byRoot := make(map[int]int, d.count)
	out := make([][]E, 0, d.count)
	for i, e := range d.elems {
		root := d.findRoot(i)
		k, ok := byRoot[root]
		if !ok {
			k = len(out)
			byRoot[root] = k
			out = append(out, make([]E, 0, d.size[root]))
		}
		out[k] = append(out[k], e)
	}
	return out
}

// SegmentOf returns the members of the segment holding e, or nil if e is
// not registered.
func (d *DisjointSet[E]) SegmentOf(e E) []E {
	i, ok := d.index[e]
	if !ok {
		return nil
	}
	root := d.findRoot(i)
	members := make([]E, 0, d.size[root])
	for j, other := range d.elems {
		if d.findRoot(j) == root {
			members = append(members, other)
		}
	}
	return members
}

// Equal reports whether d and other hold the same partition, regardless of
// insertion order or internal tree shape.
func (d *DisjointSet[E]) Equal(other *DisjointSet[E]) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Len() != other.Len() || d.count != other.count {
		return false
	}

	// With equal element sets and equal segment counts, a consistent
	// root-to-root mapping is a bijection.
	roots := make(map[int]int, d.count)
	for i, e := range d.elems {
		j, ok := other.index[e]
		if !ok {
			return false
		}
		r, otherRoot := d.findRoot(i), other.findRoot(j)
		if seen, ok := roots[r]; ok {
			if seen != otherRoot {
				return false
			}
			continue
		}
		roots[r] = otherRoot
	}
	return true
}

// String renders d as disjoint({a, b}, {c}).
func (d *DisjointSet[E]) String() string {
	sb := strings.Builder{}
	sb.WriteString("disjoint(")
	for i, segment := range d.Segments() {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("{")
		for j, e := range segment {
			if j != 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", e)
		}
		sb.WriteString("}")
	}
	sb.WriteString(")")
	return sb.String()
}

// Stats returns a summary of d.
func (d *DisjointSet[E]) Stats() Stats {
	largest := 0
	for i := range d.parent {
		if d.parent[i] == i && d.size[i] > largest {
			largest = d.size[i]
		}
	}
	return Stats{
		Elements: d.Len(),
		Segments: d.count,
		Largest:  largest,
		Merges:   d.merges,
	}
}
