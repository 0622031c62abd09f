package disjointset_test

import (
	"fmt"
	"slices"

	"github.com/FrenchMajesty/disjointset/pkg/disjointset"
)

// Example shows grouping elements and querying membership
func Example() {
	d := disjointset.New("apple", "banana", "cherry", "date").
		AddGroup("apple", "banana").
		AddGroup("cherry", "date").
		AddGroup("banana", "cherry")

	fmt.Println(d.Connected("apple", "date"))
	fmt.Println(d.Count())
	// Output:
	// true
	// 1
}

// Example shows reading back a segment in a stable order
func ExampleDisjointSet_SegmentOf() {
	d := disjointset.New(1, 2, 3, 4, 5).AddGroup(4, 2).AddGroup(2, 5)

	segment := d.SegmentOf(5)
	slices.Sort(segment)
	fmt.Println(segment)
	// Output: [2 4 5]
}

func ExampleDisjointSet_String() {
	fmt.Println(disjointset.New(1))
	// Output: disjoint({1})
}

// Example shows summary counters after a few merges
func ExampleDisjointSet_Stats() {
	d := disjointset.New[int]().AddGroup(1, 2, 3).AddGroup(10, 11).Add(20)

	fmt.Printf("%+v\n", d.Stats())
	// Output: {Elements:6 Segments:3 Largest:3 Merges:3}
}
