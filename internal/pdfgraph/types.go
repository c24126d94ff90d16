package pdfgraph

// Object is one indirect object of the document: its id, the ordered list
// of element tags found in its own subtree (its own tag first, then every
// descendant's, in document order), and the ids of every ref it contains
// (also in document order).
type Object struct {
	ID   string
	Tags []string
	Refs []string
}

// Document is the parsed object tree handed to BuildGraph: every indirect
// object in document order, plus the catalog/Root reference if one was
// found in the trailer.
type Document struct {
	Objects []Object
	// RootRef is the id referenced by the first "Root" element's first "ref"
	// descendant, or "" if none was found.
	RootRef string
}
