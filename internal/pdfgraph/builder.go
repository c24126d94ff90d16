package pdfgraph

import (
	"errors"
	"sync"
)

// ErrEmptyVertexID is returned by docBuilder.AddVertex for an empty id.
var ErrEmptyVertexID = errors.New("pdfgraph: vertex id is empty")

// docEdge is a directed reference as the walk first asserted it: From is the
// referencing object's id, To is the ref target's id.
type docEdge struct {
	From, To string
}

// docBuilder is the walk's mutable build surface: an insertion-ordered vertex
// catalog plus an append-only edge log. It exists because BuildGraph only
// ever needs four operations out of a general-purpose graph — add a vertex,
// add an edge, and read both back in the order they were asserted — so it
// carries none of a full graph's traversal or mutation machinery.
type docBuilder struct {
	muVert sync.RWMutex
	order  []string
	seen   map[string]struct{}

	muEdge sync.RWMutex
	edges  []docEdge
}

func newDocBuilder() *docBuilder {
	return &docBuilder{seen: make(map[string]struct{})}
}

// AddVertex registers id if it hasn't been seen before. Repeated calls with
// the same id are a no-op, mirroring the first-wins uniqueness rule the rest
// of the graph stack uses for labels.
func (b *docBuilder) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	b.muVert.Lock()
	defer b.muVert.Unlock()
	if _, ok := b.seen[id]; ok {
		return nil
	}
	b.seen[id] = struct{}{}
	b.order = append(b.order, id)
	return nil
}

// AddEdge records a from->to reference, implicitly registering either
// endpoint that hasn't been seen yet.
func (b *docBuilder) AddEdge(from, to string) error {
	if err := b.AddVertex(from); err != nil {
		return err
	}
	if err := b.AddVertex(to); err != nil {
		return err
	}
	b.muEdge.Lock()
	b.edges = append(b.edges, docEdge{From: from, To: to})
	b.muEdge.Unlock()
	return nil
}

// Vertices returns every registered id in first-assertion order.
func (b *docBuilder) Vertices() []string {
	b.muVert.RLock()
	defer b.muVert.RUnlock()
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Edges returns every asserted reference in first-assertion order.
func (b *docBuilder) Edges() []docEdge {
	b.muEdge.RLock()
	defer b.muEdge.RUnlock()
	out := make([]docEdge, len(b.edges))
	copy(out, b.edges)
	return out
}
