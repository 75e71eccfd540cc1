package graph

import (
	"errors"
	"math"
	"testing"
)

func testNodes(ids ...string) []Node {
	nodes := make([]Node, len(ids))
	for i, id := range ids {
		nodes[i] = Node{ID: id, Name: "Member " + id}
	}
	return nodes
}

func TestLoadNodes_Replaces(t *testing.T) {
	s := NewStore()

	if err := s.LoadNodes(testNodes("a", "b", "c")); err != nil {
		t.Fatalf("LoadNodes failed: %v", err)
	}
	if s.NodeCount() != 3 {
		t.Errorf("Expected 3 nodes, got %d", s.NodeCount())
	}

	if err := s.AddEdge("a", "b", 1.0); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}

	// Reloading replaces the node set and resets all edges
	if err := s.LoadNodes(testNodes("x", "y")); err != nil {
		t.Fatalf("LoadNodes failed: %v", err)
	}
	if s.NodeCount() != 2 {
		t.Errorf("Expected 2 nodes after reload, got %d", s.NodeCount())
	}
	if s.TotalEdgeWeight() != 0 {
		t.Errorf("Expected edge weight reset, got %f", s.TotalEdgeWeight())
	}
	if _, err := s.IndexOf("a"); !IsNotFound(err) {
		t.Errorf("Expected old node to be gone, got %v", err)
	}
}

func TestLoadNodes_DuplicateID(t *testing.T) {
	s := NewStore()

	err := s.LoadNodes(testNodes("a", "b", "a"))
	if err == nil {
		t.Fatal("Expected error for duplicate node id")
	}
	if !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("Expected ErrDuplicateNode, got %v", err)
	}
	if !IsInvalidGraph(err) {
		t.Error("Expected IsInvalidGraph to match duplicate id error")
	}
}

func TestLoadNodes_InvalidNode(t *testing.T) {
	s := NewStore()

	err := s.LoadNodes([]Node{{ID: "", Name: "nameless"}})
	if err == nil {
		t.Fatal("Expected error for empty node id")
	}
	if !errors.Is(err, ErrInvalidNode) {
		t.Errorf("Expected ErrInvalidNode, got %v", err)
	}

	err = s.LoadNodes([]Node{{ID: "a", TimeSpent: -1}})
	if !errors.Is(err, ErrInvalidNode) {
		t.Errorf("Expected ErrInvalidNode for negative timeSpent, got %v", err)
	}
}

func TestAddEdge_SymmetricAccumulate(t *testing.T) {
	s := NewStore()
	if err := s.LoadNodes(testNodes("a", "b")); err != nil {
		t.Fatalf("LoadNodes failed: %v", err)
	}

	if err := s.AddEdge("a", "b", 2.0); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	if err := s.AddEdge("b", "a", 3.0); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.adjacency[0][1] != 5.0 || s.adjacency[1][0] != 5.0 {
		t.Errorf("Expected symmetric accumulated weight 5.0, got %f / %f",
			s.adjacency[0][1], s.adjacency[1][0])
	}
}

func TestAddEdge_UnknownNodeIsNoOp(t *testing.T) {
	s := NewStore()
	if err := s.LoadNodes(testNodes("a", "b")); err != nil {
		t.Fatalf("LoadNodes failed: %v", err)
	}

	// Unknown ids must not error and must not touch the matrix
	if err := s.AddEdge("a", "ghost", 1.0); err != nil {
		t.Errorf("Expected silent no-op for unknown target, got %v", err)
	}
	if err := s.AddEdge("ghost", "b", 1.0); err != nil {
		t.Errorf("Expected silent no-op for unknown source, got %v", err)
	}
	if s.TotalEdgeWeight() != 0 {
		t.Errorf("Expected no accumulated weight, got %f", s.TotalEdgeWeight())
	}
}

func TestAddEdge_InvalidWeight(t *testing.T) {
	s := NewStore()
	if err := s.LoadNodes(testNodes("a", "b")); err != nil {
		t.Fatalf("LoadNodes failed: %v", err)
	}

	for _, weight := range []float64{0, -1.5} {
		err := s.AddEdge("a", "b", weight)
		if !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("Expected ErrInvalidWeight for weight %f, got %v", weight, err)
		}
	}
}

func TestAddEdge_SelfLoopIgnored(t *testing.T) {
	s := NewStore()
	if err := s.LoadNodes(testNodes("a", "b")); err != nil {
		t.Fatalf("LoadNodes failed: %v", err)
	}

	if err := s.AddEdge("a", "a", 1.0); err != nil {
		t.Fatalf("Expected self-loop to be ignored, got %v", err)
	}

	transition := s.TransitionMatrix()
	if transition[0][0] != 0 {
		t.Errorf("Expected zero diagonal, got %f", transition[0][0])
	}
}

func TestTransitionMatrix_RowsNormalized(t *testing.T) {
	s := NewStore()
	if err := s.LoadNodes(testNodes("a", "b", "c", "d")); err != nil {
		t.Fatalf("LoadNodes failed: %v", err)
	}
	s.AddEdge("a", "b", 1.0)
	s.AddEdge("a", "c", 3.0)
	s.AddEdge("b", "c", 2.0)
	// d stays isolated

	transition := s.TransitionMatrix()

	for i, row := range transition {
		sum := 0.0
		for _, p := range row {
			if p < 0 {
				t.Errorf("Row %d has negative entry %f", i, p)
			}
			sum += p
		}
		if i == 3 {
			if sum != 0 {
				t.Errorf("Expected isolated row to stay all-zero, got sum %f", sum)
			}
			continue
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("Expected row %d to sum to 1, got %f", i, sum)
		}
	}

	// Weighted split: a's mass goes 1/4 to b, 3/4 to c
	if math.Abs(transition[0][1]-0.25) > 1e-9 || math.Abs(transition[0][2]-0.75) > 1e-9 {
		t.Errorf("Expected weighted normalization 0.25/0.75, got %f/%f",
			transition[0][1], transition[0][2])
	}
}

func TestTransitionMatrix_CacheInvalidation(t *testing.T) {
	s := NewStore()
	if err := s.LoadNodes(testNodes("a", "b")); err != nil {
		t.Fatalf("LoadNodes failed: %v", err)
	}
	s.AddEdge("a", "b", 1.0)

	before := s.TransitionMatrix()
	if before[0][1] != 1.0 {
		t.Fatalf("Expected full transition a->b, got %f", before[0][1])
	}

	// Mutation must invalidate the cached matrix before the next read
	s.AddEdge("a", "b", 1.0)
	after := s.TransitionMatrix()
	if after[0][1] != 1.0 {
		t.Errorf("Expected renormalized transition 1.0, got %f", after[0][1])
	}

	s2 := s.Snapshot()
	s3 := s.Snapshot()
	if &s2.Transition[0][0] != &s3.Transition[0][0] {
		t.Error("Expected unchanged graph to reuse the cached transition matrix")
	}
}

func TestNodeLookups(t *testing.T) {
	s := NewStore()
	nodes := []Node{
		{ID: "a", Name: "Alice", Revenue: 120, TimeSpent: 3},
		{ID: "b", Name: "Bob", Revenue: -40, TimeSpent: 9},
	}
	if err := s.LoadNodes(nodes); err != nil {
		t.Fatalf("LoadNodes failed: %v", err)
	}

	node, err := s.Node("a")
	if err != nil {
		t.Fatalf("Node lookup failed: %v", err)
	}
	if node.Name != "Alice" || node.Revenue != 120 {
		t.Errorf("Unexpected node data: %+v", node)
	}

	if _, err := s.Node("missing"); !IsNotFound(err) {
		t.Errorf("Expected not found error, got %v", err)
	}

	idx, err := s.IndexOf("b")
	if err != nil || idx != 1 {
		t.Errorf("Expected index 1 for b, got %d (%v)", idx, err)
	}

	// Nodes() returns a copy in insertion order
	copied := s.Nodes()
	copied[0].Name = "mutated"
	original, _ := s.Node("a")
	if original.Name != "Alice" {
		t.Error("Expected Nodes() to return a copy")
	}
}
