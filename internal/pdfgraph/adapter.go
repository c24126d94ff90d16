package pdfgraph

import (
	"github.com/toejamhoney/nabu-go/internal/lgraph"
)

// rootVertexLabel is the synthetic vertex the adapter always emits;
// missingRootLabel is the placeholder it emits only when the document names
// no root.
const (
	rootVertexLabel   = "PDF"
	missingRootLabel  = "missing_root"
	missingTargetTag  = "missing_target"
	syntheticStartTag = "start"
	syntheticRootTag  = "root"
)

// BuildGraph walks doc into a labeled graph: a synthetic "PDF" root vertex,
// an edge to the document's catalog (or a synthesized "missing_root"
// vertex if doc.RootRef is empty), one vertex per object (duplicate ids
// disambiguated by appending underscores), and one edge per ref — refs that
// never appear as an object id are synthesized as trailing vertices tagged
// "missing_target".
//
// The walk itself is built on docBuilder rather than directly on the dense
// internal/lgraph.Graph: the walk adds and tags vertices across three
// separate passes (objects, then synthesized missing targets, then edges)
// and docBuilder's idempotent AddVertex and append-only AddEdge (duplicate
// edges are collapsed later by internal/lgraph) tolerate that incremental,
// revisited construction far more cheaply than growing a dense matrix would.
// The finished docBuilder is exported into a fresh internal/lgraph.Graph in
// one pass once the walk is complete.
func BuildGraph(doc *Document) (*lgraph.Graph, error) {
	cg := newDocBuilder()
	tags := make(map[string][]string)

	if err := addWalkVertex(cg, tags, rootVertexLabel, []string{syntheticStartTag}); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	seen[rootVertexLabel] = true

	// rootID is resolved against the object ids below, not pre-claimed here:
	// doc.RootRef ordinarily names a real object (the catalog), so marking
	// it seen before that object is walked would force a spurious "_"
	// suffix onto the very object the root is supposed to point at. Only
	// the synthesized missing_root placeholder is reserved immediately,
	// since that vertex is actually created on the spot.
	rootID := doc.RootRef
	if rootID == "" {
		rootID = missingRootLabel
		if err := addWalkVertex(cg, tags, rootID, []string{syntheticRootTag}); err != nil {
			return nil, err
		}
		seen[rootID] = true
	}

	type resolvedObject struct {
		srcID string
		refs  []string
	}
	resolved := make([]resolvedObject, 0, len(doc.Objects))

	for _, obj := range doc.Objects {
		srcID := obj.ID
		for seen[srcID] {
			srcID += "_"
		}
		seen[srcID] = true

		if err := addWalkVertex(cg, tags, srcID, obj.Tags); err != nil {
			return nil, err
		}
		resolved = append(resolved, resolvedObject{srcID: srcID, refs: obj.Refs})
	}

	// Second pass: synthesize a vertex for every ref that never turned up as
	// a real object id, in first-encountered order. Deferred until every
	// real object has been walked so a ref that resolves to a later object
	// is never mistaken for a missing target (see
	// TestBuildGraph_RefToLaterObjectDoesNotSynthesizeMissingTarget).
	var missingTargets []string
	missingSeen := make(map[string]bool)
	for _, obj := range resolved {
		for _, dstID := range obj.refs {
			if !seen[dstID] && !missingSeen[dstID] {
				missingTargets = append(missingTargets, dstID)
				missingSeen[dstID] = true
			}
		}
	}
	for _, id := range missingTargets {
		seen[id] = true
		if err := addWalkVertex(cg, tags, id, []string{missingTargetTag}); err != nil {
			return nil, err
		}
	}

	// Third pass: every ref endpoint a forthcoming edge names already exists
	// as a real, correctly tagged vertex. The one exception is a RootRef that
	// names no object: AddEdge creates that vertex implicitly, with no tags.
	if err := cg.AddEdge(rootVertexLabel, rootID); err != nil {
		return nil, err
	}
	for _, obj := range resolved {
		for _, dstID := range obj.refs {
			if err := cg.AddEdge(obj.srcID, dstID); err != nil {
				return nil, err
			}
		}
	}

	return exportToLgraph(cg, tags)
}

// addWalkVertex registers id in cg and records its tags for exportToLgraph;
// a vertex's tags are left untouched during the walk so every tag
// assignment is visible at once at export time, regardless of how many
// times a label is revisited.
func addWalkVertex(cg *docBuilder, tags map[string][]string, id string, attrs []string) error {
	if err := cg.AddVertex(id); err != nil {
		return err
	}
	if _, ok := tags[id]; !ok {
		tags[id] = attrs
	}
	return nil
}

// exportToLgraph snapshots a finished docBuilder into a dense
// internal/lgraph.Graph: cg.Vertices() gives a deterministic label order,
// cg.Edges() gives a deterministic edge order, and tags supplies each
// vertex's attribute set directly as the walk's own []string values.
func exportToLgraph(cg *docBuilder, tags map[string][]string) (*lgraph.Graph, error) {
	labels := cg.Vertices()
	vertices := make([]lgraph.Vertex, 0, len(labels))
	for _, label := range labels {
		vertices = append(vertices, lgraph.Vertex{Label: label, Attrs: tags[label]})
	}

	cedges := cg.Edges()
	edges := make([]lgraph.Edge, 0, len(cedges))
	for _, e := range cedges {
		if e.From == e.To {
			continue // self-referencing PDF objects carry no structural signal in an undirected graph
		}
		edges = append(edges, lgraph.Edge{U: e.From, V: e.To})
	}

	g := lgraph.New()
	if err := g.Init(vertices, edges); err != nil {
		return nil, err
	}
	return g, nil
}
