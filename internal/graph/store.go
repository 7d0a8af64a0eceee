package graph

import "strings"

// Node is a labeled event in the graph.
type Node struct {
	ID    string
	Label string
	Span  string
	Tags  []string
	TS    string
	Kind  Kind

	ord      int    // ingestion order index, stable across attribute overwrites
	haystack string // lowercase search text for the filter
}

// DisplayLabel returns "id · label", or the bare id when the label is empty.
func (n *Node) DisplayLabel() string {
	if n.Label == "" {
		return n.ID
	}
	return n.ID + " · " + n.Label
}

// Edge is a directed relationship between two node ids. An edge whose
// endpoints are not both present in the store is dangling: retained,
// flagged, and skipped by traversal until the missing endpoint arrives.
type Edge struct {
	From  string
	To    string
	Label string

	resolved bool
}

// Dangling reports whether the edge is still missing an endpoint.
func (e *Edge) Dangling() bool {
	return !e.resolved
}

// Store owns all nodes and edges plus the parents-of and children-of
// adjacency indices. It is append-only during ingestion and immutable
// afterwards, so the interactive phase reads it without locking.
type Store struct {
	nodes    map[string]*Node
	order    []string
	edges    []*Edge
	parents  map[string][]*Edge // incoming edges by target id
	children map[string][]*Edge // outgoing edges by source id
	pending  map[string][]*Edge // unresolved edges by missing endpoint id
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		nodes:    make(map[string]*Node),
		parents:  make(map[string][]*Edge),
		children: make(map[string][]*Edge),
		pending:  make(map[string][]*Edge),
	}
}

// ApplyNode inserts or updates a node. A duplicate id overwrites the
// node's attributes but keeps its identity: the ingestion order slot and
// any already-formed edges are preserved. Edges that were waiting on this
// id are resolved.
func (s *Store) ApplyNode(rec NodeRecord) {
	if existing, ok := s.nodes[rec.ID]; ok {
		existing.Label = rec.Label
		existing.Span = rec.Span
		existing.Tags = rec.Tags
		existing.TS = rec.TS
		existing.Kind = rec.Kind
		existing.haystack = buildHaystack(existing)
		return
	}

	node := &Node{
		ID:    rec.ID,
		Label: rec.Label,
		Span:  rec.Span,
		Tags:  rec.Tags,
		TS:    rec.TS,
		Kind:  rec.Kind,
		ord:   len(s.order),
	}
	node.haystack = buildHaystack(node)
	s.nodes[rec.ID] = node
	s.order = append(s.order, rec.ID)

	s.resolvePending(rec.ID)
}

// ApplyEdge inserts an edge. Edges referencing nodes not yet seen are
// accepted and tracked as pending under each missing endpoint.
func (s *Store) ApplyEdge(rec EdgeRecord) {
	edge := &Edge{From: rec.From, To: rec.To, Label: rec.Label}
	s.edges = append(s.edges, edge)

	_, haveFrom := s.nodes[edge.From]
	_, haveTo := s.nodes[edge.To]
	if haveFrom && haveTo {
		s.resolve(edge)
		return
	}
	if !haveFrom {
		s.pending[edge.From] = append(s.pending[edge.From], edge)
	}
	if !haveTo {
		s.pending[edge.To] = append(s.pending[edge.To], edge)
	}
}

// resolve adds the edge to both adjacency indices. Both endpoints must
// exist and the edge must not be resolved already.
func (s *Store) resolve(edge *Edge) {
	edge.resolved = true
	s.children[edge.From] = append(s.children[edge.From], edge)
	s.parents[edge.To] = append(s.parents[edge.To], edge)
}

// resolvePending completes edges that were waiting on the given id. An
// edge missing both endpoints sits in two pending lists; the resolved
// flag keeps it from being indexed twice.
func (s *Store) resolvePending(id string) {
	waiting := s.pending[id]
	if len(waiting) == 0 {
		return
	}
	delete(s.pending, id)

	for _, edge := range waiting {
		if edge.resolved {
			continue
		}
		_, haveFrom := s.nodes[edge.From]
		_, haveTo := s.nodes[edge.To]
		if haveFrom && haveTo {
			s.resolve(edge)
		}
	}
}

// Node returns the node with the given id, or nil.
func (s *Store) Node(id string) *Node {
	return s.nodes[id]
}

// Order returns node ids in ingestion order. The returned slice is owned
// by the store; callers must not modify it.
func (s *Store) Order() []string {
	return s.order
}

// OrderIndex returns the ingestion order index of a node, or -1 if the
// node does not exist.
func (s *Store) OrderIndex(id string) int {
	if n, ok := s.nodes[id]; ok {
		return n.ord
	}
	return -1
}

// Parents returns the ids of direct parents of a node, in edge arrival
// order. Dangling edges never appear in adjacency, so no endpoint check
// is needed here.
func (s *Store) Parents(id string) []string {
	return endpointIDs(s.parents[id], func(e *Edge) string { return e.From })
}

// Children returns the ids of direct children of a node, in edge arrival
// order.
func (s *Store) Children(id string) []string {
	return endpointIDs(s.children[id], func(e *Edge) string { return e.To })
}

// ParentEdges returns the resolved incoming edges of a node.
func (s *Store) ParentEdges(id string) []*Edge {
	return s.parents[id]
}

// ChildEdges returns the resolved outgoing edges of a node.
func (s *Store) ChildEdges(id string) []*Edge {
	return s.children[id]
}

// Degree returns the number of direct parents and children of a node.
func (s *Store) Degree(id string) (in, out int) {
	return len(s.parents[id]), len(s.children[id])
}

// DanglingEdges returns all edges still missing an endpoint.
func (s *Store) DanglingEdges() []*Edge {
	var dangling []*Edge
	for _, edge := range s.edges {
		if !edge.resolved {
			dangling = append(dangling, edge)
		}
	}
	return dangling
}

// NodeCount returns the number of nodes.
func (s *Store) NodeCount() int {
	return len(s.nodes)
}

// EdgeCount returns the number of edges, dangling included.
func (s *Store) EdgeCount() int {
	return len(s.edges)
}

func endpointIDs(edges []*Edge, pick func(*Edge) string) []string {
	if len(edges) == 0 {
		return nil
	}
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, pick(e))
	}
	return ids
}

// buildHaystack joins the searchable node fields into one lowercase string.
func buildHaystack(n *Node) string {
	parts := []string{n.ID, n.Label, n.Span}
	parts = append(parts, n.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}
