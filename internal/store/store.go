package store

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	prefixRecord = byte(0x01) // documentID -> gob(Record)
	prefixFamily = byte(0x02) // edgeDigest + 0x00 + documentID -> empty
)

// Options configures a Store.
type Options struct {
	// DataDir is the directory Badger stores its files in. Required unless
	// InMemory is set.
	DataDir string
	// InMemory runs Badger entirely in RAM; useful for tests.
	InMemory bool
	// SyncWrites forces fsync after every write, trading throughput for
	// durability.
	SyncWrites bool
}

// Store is a Badger-backed fingerprint store. One Store owns one *badger.DB;
// the score action's workers all share a single Store handle, each reading
// through its own transaction; no worker opens a handle of its own.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a Store at the given options.
func Open(opts Options) (*Store, error) {
	badgerOpts := badger.DefaultOptions(opts.DataDir).WithLogger(nil)
	if opts.InMemory {
		badgerOpts = badgerOpts.WithInMemory(true)
	}
	if opts.SyncWrites {
		badgerOpts = badgerOpts.WithSyncWrites(true)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("store: opening badger: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying Badger handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func recordKey(documentID string) []byte {
	return append([]byte{prefixRecord}, []byte(documentID)...)
}

func familyKey(edgeDigest, documentID string) []byte {
	key := make([]byte, 0, 1+len(edgeDigest)+1+len(documentID))
	key = append(key, prefixFamily)
	key = append(key, []byte(edgeDigest)...)
	key = append(key, 0x00)
	key = append(key, []byte(documentID)...)
	return key
}

func familyPrefix(edgeDigest string) []byte {
	key := make([]byte, 0, 1+len(edgeDigest)+1)
	key = append(key, prefixFamily)
	key = append(key, []byte(edgeDigest)...)
	key = append(key, 0x00)
	return key
}

// Put inserts or replaces the record for rec.DocumentID, and indexes it
// under its family digest.
func (s *Store) Put(rec Record) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return fmt.Errorf("store: encoding record %s: %w", rec.DocumentID, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(recordKey(rec.DocumentID), buf.Bytes()); err != nil {
			return err
		}
		return txn.Set(familyKey(rec.EdgeDigest, rec.DocumentID), []byte{})
	})
}

// Get returns the record for documentID, or ErrNotFound.
func (s *Store) Get(documentID string) (Record, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(documentID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return gob.NewDecoder(bytes.NewReader(val)).Decode(&rec)
		})
	})
	return rec, err
}

// DistinctEdgeDigests returns one edge-digest per structural family — the
// list of distinct values of the family index, used to partition the score
// action's sweep across workers.
func (s *Store) DistinctEdgeDigests() ([]string, error) {
	var out []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte{prefixFamily}
		it := txn.NewIterator(opts)
		defer it.Close()

		var lastDigest string
		haveLast := false
		for it.Rewind(); it.ValidForPrefix(opts.Prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			digest, _ := splitFamilyKey(key)
			if !haveLast || digest != lastDigest {
				out = append(out, digest)
				lastDigest = digest
				haveLast = true
			}
		}
		return nil
	})
	return out, err
}

// GetFamilySignature returns one representative (documentID, signature)
// pair for edgeDigest's structural family.
func (s *Store) GetFamilySignature(edgeDigest string) (string, []float64, error) {
	var documentID string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		prefix := familyPrefix(edgeDigest)
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		it.Rewind()
		if !it.ValidForPrefix(prefix) {
			return ErrNotFound
		}
		_, documentID = splitFamilyKey(it.Item().KeyCopy(nil))
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	rec, err := s.Get(documentID)
	if err != nil {
		return "", nil, err
	}
	return documentID, rec.Signature, nil
}

// Chunk returns up to limit records starting at offset, in key order
// (document-id order) — the stable ordering partitioned scans depend on.
func (s *Store) Chunk(limit, offset int) ([]Record, error) {
	var out []Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte{prefixRecord}
		it := txn.NewIterator(opts)
		defer it.Close()

		skipped := 0
		for it.Rewind(); it.ValidForPrefix(opts.Prefix); it.Next() {
			if skipped < offset {
				skipped++
				continue
			}
			if len(out) >= limit {
				break
			}
			var rec Record
			if err := it.Item().Value(func(val []byte) error {
				return gob.NewDecoder(bytes.NewReader(val)).Decode(&rec)
			}); err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	return out, err
}

// Size returns the number of stored records.
func (s *Store) Size() (int, error) {
	var n int
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte{prefixRecord}
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(opts.Prefix); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// splitFamilyKey parses a 0x02+edgeDigest+0x00+documentID key back into
// its two components.
func splitFamilyKey(key []byte) (edgeDigest, documentID string) {
	body := key[1:] // drop prefixFamily
	sep := bytes.IndexByte(body, 0x00)
	if sep < 0 {
		return string(body), ""
	}
	return string(body[:sep]), string(body[sep+1:])
}
