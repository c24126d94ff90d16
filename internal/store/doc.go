// Package store persists fingerprint records in a Badger-backed key-value
// store, keyed primarily by document id and secondarily by a structural
// family digest (the MD5 of a document's canonical edge list).
//
// Key layout:
//
//	0x01 + documentID                -> gob(Record)    primary
//	0x02 + edgeDigest + 0x00 + docID -> struct{}{}      family index
//
// Badger's LSM tree iterates keys in sorted order, which gives Chunk its
// stable ordering and Distinct its grouping for free — no secondary sort
// step is needed.
package store
