package ledger

import (
	"bytes"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Ledger is a Badger-backed job ledger, key jobID + 0x00 + path -> empty.
type Ledger struct {
	db *badger.DB
}

// Options configures a Ledger.
type Options struct {
	DataDir    string
	InMemory   bool
	SyncWrites bool
}

// Open opens (or creates) a Ledger at the given options. SyncWrites is off
// unless opts.SyncWrites is set: only with it set is each mark fsynced
// before Mark returns (cmd/nabu sets it).
func Open(opts Options) (*Ledger, error) {
	badgerOpts := badger.DefaultOptions(opts.DataDir).WithLogger(nil)
	if opts.InMemory {
		badgerOpts = badgerOpts.WithInMemory(true)
	}
	badgerOpts = badgerOpts.WithSyncWrites(opts.SyncWrites)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("ledger: opening badger: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close releases the underlying Badger handle.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func markKey(jobID, path string) []byte {
	key := make([]byte, 0, len(jobID)+1+len(path))
	key = append(key, []byte(jobID)...)
	key = append(key, 0x00)
	key = append(key, []byte(path)...)
	return key
}

func jobPrefix(jobID string) []byte {
	key := make([]byte, 0, len(jobID)+1)
	key = append(key, []byte(jobID)...)
	key = append(key, 0x00)
	return key
}

// Mark records path as completed under jobID. Idempotent: marking the same
// (jobID, path) twice is a no-op.
func (l *Ledger) Mark(jobID, path string) error {
	return l.db.Update(func(txn *badger.Txn) error {
		return txn.Set(markKey(jobID, path), []byte{})
	})
}

// Completed returns the set of paths already marked done under jobID.
func (l *Ledger) Completed(jobID string) (map[string]bool, error) {
	out := make(map[string]bool)
	prefix := jobPrefix(jobID)
	err := l.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			path := bytes.TrimPrefix(key, prefix)
			out[string(path)] = true
		}
		return nil
	})
	return out, err
}
