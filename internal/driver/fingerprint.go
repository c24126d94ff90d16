package driver

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/toejamhoney/nabu-go/internal/lgraph"
	"github.com/toejamhoney/nabu-go/internal/netsimile"
	"github.com/toejamhoney/nabu-go/internal/store"
)

// Fingerprint extracts a store.Record from a fully-built graph: its
// vertices and edges in insertion order (the canonical, round-trippable
// form store.Record commits to), digests of each, and its NetSimile
// signature.
func Fingerprint(documentID string, g *lgraph.Graph) (store.Record, error) {
	sig, err := netsimile.Signature(g)
	if err != nil {
		return store.Record{}, fmt.Errorf("driver: signature for %s: %w", documentID, err)
	}

	verts := g.Vertices()
	recVerts := make([]store.RecordVertex, len(verts))
	for i, v := range verts {
		recVerts[i] = store.RecordVertex{Label: v.Label, Attrs: v.Attrs}
	}

	recEdges := edgesOf(g)

	return store.Record{
		DocumentID:   documentID,
		VertexDigest: digest(canonicalVertices(recVerts)),
		EdgeDigest:   digest(canonicalEdges(recEdges)),
		Vertices:     recVerts,
		Edges:        recEdges,
		Signature:    sig,
	}, nil
}

// edgesOf returns g's edges in adapter-emitted order: the order
// internal/pdfgraph's walk first asserted them, endpoints as asserted rather
// than normalized by vertex index.
func edgesOf(g *lgraph.Graph) []store.RecordEdge {
	list := g.EdgeList()
	edges := make([]store.RecordEdge, len(list))
	for i, e := range list {
		edges[i] = store.RecordEdge{U: e.U, V: e.V}
	}
	return edges
}

func canonicalVertices(vs []store.RecordVertex) string {
	var sb strings.Builder
	for _, v := range vs {
		sb.WriteString(v.Label)
		sb.WriteByte(':')
		sb.WriteString(strings.Join(v.Attrs, ","))
		sb.WriteByte(';')
	}
	return sb.String()
}

func canonicalEdges(es []store.RecordEdge) string {
	var sb strings.Builder
	for _, e := range es {
		sb.WriteByte('(')
		sb.WriteString(e.U)
		sb.WriteByte(',')
		sb.WriteString(e.V)
		sb.WriteString(");")
	}
	return sb.String()
}

func digest(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
