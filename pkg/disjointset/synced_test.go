package disjointset_test

import (
	"sync"
	"testing"

	"github.com/FrenchMajesty/disjointset/pkg/disjointset"
)

// TestSynced_ConcurrentAddGroup tests that concurrent merges produce the sequential partition
func TestSynced_ConcurrentAddGroup(t *testing.T) {
	s := disjointset.NewSynced[int]()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AddGroup(i, i+1)
			s.Connected(0, i)
			s.Segments()
		}(i)
	}
	wg.Wait()

	if s.Len() != 101 {
		t.Errorf("Expected 101 elements, got %d", s.Len())
	}
	if s.Count() != 1 {
		t.Errorf("Expected a single segment, got %d", s.Count())
	}

	expected := disjointset.New[int]()
	for i := 0; i < 100; i++ {
		expected.AddGroup(i, i+1)
	}
	if !s.Snapshot().Equal(expected) {
		t.Error("Expected concurrent result to equal sequential result")
	}
}

// TestSynced_Snapshot tests that a snapshot is detached from the wrapper
func TestSynced_Snapshot(t *testing.T) {
	s := disjointset.Wrap(disjointset.New("a", "b"))
	snap := s.Snapshot()

	s.AddGroup("a", "b").Add("c")

	if snap.Connected("a", "b") {
		t.Error("Expected snapshot to be unaffected by later merges")
	}
	if snap.Contains("c") {
		t.Error("Expected snapshot not to see later elements")
	}
	if !s.Contains("c") || !s.Connected("a", "b") {
		t.Error("Expected wrapper to reflect merges")
	}
}

// TestSynced_Queries tests the read side of the wrapper
func TestSynced_Queries(t *testing.T) {
	s := disjointset.Wrap[int](nil).AddGroup(1, 2)

	root, ok := s.Find(2)
	if !ok {
		t.Fatal("Expected 2 to be found")
	}
	if root != 1 && root != 2 {
		t.Errorf("Unexpected root %d", root)
	}
	if got := s.String(); got != "disjoint({1, 2})" && got != "disjoint({2, 1})" {
		t.Errorf("Unexpected rendering %q", got)
	}
	if n := len(s.Elements()); n != 2 {
		t.Errorf("Expected 2 elements, got %d", n)
	}
}
