// Package pdfgraph adapts a parsed PDF object tree into a labeled graph: a
// synthetic "PDF" root, the document's catalog/Root object, every indirect
// object, and the reference edges between them.
//
// The real PDF byte parser — turning a .pdf file into the labeled object
// tree this package consumes — is an external collaborator whose interface
// is named, not designed; this package's subpackage parse ships one
// concrete, intentionally minimal producer reading a pre-extracted
// PDF-structure-as-XML representation.
package pdfgraph
