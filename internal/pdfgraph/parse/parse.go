// Package parse produces a *pdfgraph.Document from a pre-extracted
// PDF-structure-as-XML representation: a root "pdf" element whose direct
// "object" children carry an "id" attribute and arbitrarily nested tags,
// some of them "ref" elements carrying the id of the object they point to,
// and whose trailer dump somewhere nests a "Root" element pointing at the
// document catalog.
//
// This is the one concrete producer of pdfgraph.Document this module
// ships; the real PDF byte parser that builds this XML shape in the first
// place is out of scope.
package parse

import (
	"encoding/xml"
	"io"

	"github.com/toejamhoney/nabu-go/internal/pdfgraph"
)

// Parse reads r as the XML representation described in the package doc and
// returns the Document it describes.
func Parse(r io.Reader) (*pdfgraph.Document, error) {
	dec := xml.NewDecoder(r)

	var doc pdfgraph.Document
	var stack []string

	var curObject *pdfgraph.Object
	objectDepth := -1 // len(stack) at which the active object was opened

	rootDepth := -1      // len(stack) at which the (one and only) "Root" element was opened
	rootEntered := false // whether we've already found the first "Root" element
	rootFound := false   // whether a ref was found within it

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local

			if curObject == nil && name == "object" && len(stack) == 1 {
				id := attrValue(t.Attr, "id")
				doc.Objects = append(doc.Objects, pdfgraph.Object{ID: id})
				curObject = &doc.Objects[len(doc.Objects)-1]
				objectDepth = len(stack)
			}

			if curObject != nil {
				curObject.Tags = append(curObject.Tags, name)
				if name == "ref" {
					curObject.Refs = append(curObject.Refs, attrValue(t.Attr, "id"))
				}
			}

			if !rootEntered && name == "Root" {
				rootEntered = true
				rootDepth = len(stack)
			} else if rootDepth != -1 && !rootFound && name == "ref" {
				doc.RootRef = attrValue(t.Attr, "id")
				rootFound = true
			}

			stack = append(stack, name)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

			if curObject != nil && len(stack) == objectDepth {
				curObject = nil
				objectDepth = -1
			}
			if rootDepth != -1 && len(stack) == rootDepth {
				rootDepth = -1 // this Root subtree held no ref; search is exhausted
			}
		}
	}

	return &doc, nil
}

func attrValue(attrs []xml.Attr, name string) string {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
