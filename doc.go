// Package nabu (nabu-go) fingerprints PDF object graphs and clusters
// documents that share structural ancestry — shared exploit kits,
// shared authoring toolchains, shared malware builders.
//
// What is nabu-go?
//
//	A thread-safe, dense-matrix-backed graph toolkit that brings together:
//
//	  - PDF adapter: walk an object tree into vertices & edges
//	  - Labeled graphs: dense adjacency-matrix views with attribute vertices
//	  - NetSimile signatures: 35-dim structural fingerprints, Canberra-compared
//	  - Maximum common subgraph: Bron-Kerbosch over an association graph
//	  - A crash-resumable, parallel build/score driver backed by Badger
//
// Under the hood, everything is organized under subpackages:
//
//	matrix/           — dense matrix storage + column-moment statistics
//	internal/pdfgraph — PDF adapter: parses an object tree into an internal/lgraph.Graph
//	internal/lgraph   — labeled, dense-matrix graph (the unit clique/netsimile operate on)
//	internal/netsimile — per-node feature extraction + moment-aggregated signatures
//	internal/clique   — pivoted Bron-Kerbosch maximum clique enumeration
//	internal/assoc    — association (modular product) graph + similarity scoring
//	internal/store    — Badger-backed fingerprint store, keyed by document and family
//	internal/ledger   — Badger-backed job ledger for crash-resumable batch runs
//	internal/driver   — parallel build/score orchestration
//	cmd/nabu          — the nabu CLI
//
// See SPEC_FULL.md for the full component and data-model description.
package nabu
