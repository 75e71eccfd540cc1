package graph

import (
	"sync"

	"github.com/dd0wney/synergy-rank/pkg/validation"
)

// Node is an actor in the relationship graph. Identity is the ID;
// Revenue and TimeSpent are externally supplied attributes used for
// score correction and never mutated by the engine.
type Node struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
	TimeSpent float64 `json:"timeSpent"`
}

// Store owns the node set and the symmetric weighted adjacency matrix,
// and caches the derived row-normalized transition matrix.
//
// Mutation (LoadNodes, AddEdge) is single-writer; reads (Snapshot,
// TransitionMatrix) may run concurrently. Callers must not mutate the
// graph while an analysis is reading a snapshot.
type Store struct {
	mu         sync.RWMutex
	nodes      []Node
	indexByID  map[string]int
	adjacency  [][]float64 // row-major n×n, symmetric, zero diagonal
	transition [][]float64 // cached row-normalized adjacency, nil when stale
	edgeWeight float64     // total accumulated weight (each pair counted once)
}

// Snapshot is a read-only view of the graph taken at a point in time.
// All analyses for one or more seeds can share a single snapshot.
type Snapshot struct {
	Nodes      []Node
	IndexByID  map[string]int
	Transition [][]float64
	N          int
	EdgeWeight float64
}

// NewStore creates an empty graph store.
func NewStore() *Store {
	return &Store{
		indexByID: make(map[string]int),
	}
}

// LoadNodes replaces the full node set, builds the id→index map and
// resets the adjacency matrix to all-zero. Duplicate ids and nodes that
// fail validation are rejected.
func (s *Store) LoadNodes(nodes []Node) error {
	indexByID := make(map[string]int, len(nodes))
	for i, node := range nodes {
		if err := validation.ValidateNodeInput(&validation.NodeInput{
			ID:        node.ID,
			Name:      node.Name,
			TimeSpent: node.TimeSpent,
		}); err != nil {
			return InvalidNodeError(node.ID, err)
		}
		if _, exists := indexByID[node.ID]; exists {
			return DuplicateNodeError(node.ID)
		}
		indexByID[node.ID] = i
	}

	n := len(nodes)
	adjacency := make([][]float64, n)
	for i := range adjacency {
		adjacency[i] = make([]float64, n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nodes = make([]Node, n)
	copy(s.nodes, nodes)
	s.indexByID = indexByID
	s.adjacency = adjacency
	s.transition = nil
	s.edgeWeight = 0

	return nil
}

// AddEdge sets or accumulates the undirected edge weight between two
// nodes. Referencing an unknown node id is a silent no-op so callers
// can batch edges before confirming all nodes are loaded. Self-loops
// are ignored to preserve the zero diagonal. A non-positive weight is
// a caller error.
func (s *Store) AddEdge(source, target string, weight float64) error {
	if weight <= 0 {
		return InvalidWeightError(source, target, weight)
	}
	if source == target {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, okSource := s.indexByID[source]
	j, okTarget := s.indexByID[target]
	if !okSource || !okTarget {
		return nil
	}

	s.adjacency[i][j] += weight
	s.adjacency[j][i] += weight
	s.edgeWeight += weight
	s.transition = nil

	return nil
}

// NodeCount returns the number of nodes in the graph.
func (s *Store) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// TotalEdgeWeight returns the accumulated weight across all edges,
// counting each undirected pair once.
func (s *Store) TotalEdgeWeight() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.edgeWeight
}

// IndexOf resolves a node id to its matrix index.
func (s *Store) IndexOf(id string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.indexByID[id]
	if !ok {
		return 0, NodeNotFoundError("IndexOf", id)
	}
	return idx, nil
}

// Node returns the node with the given id.
func (s *Store) Node(id string) (Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.indexByID[id]
	if !ok {
		return Node{}, NodeNotFoundError("Node", id)
	}
	return s.nodes[idx], nil
}

// Nodes returns a copy of the node list in insertion order.
func (s *Store) Nodes() []Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]Node, len(s.nodes))
	copy(nodes, s.nodes)
	return nodes
}

// Snapshot builds (or reuses) the transition matrix and returns a
// read-only view of the current graph state.
func (s *Store) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.transition == nil {
		s.transition = buildTransition(s.adjacency)
	}

	return &Snapshot{
		Nodes:      s.nodes,
		IndexByID:  s.indexByID,
		Transition: s.transition,
		N:          len(s.nodes),
		EdgeWeight: s.edgeWeight,
	}
}

// TransitionMatrix returns the cached row-normalized adjacency matrix,
// building it if a mutation invalidated the cache. Rows with zero sum
// stay all-zero (isolated/absorbing nodes).
func (s *Store) TransitionMatrix() [][]float64 {
	return s.Snapshot().Transition
}
