package driver

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/toejamhoney/nabu-go/internal/netsimile"
	"github.com/toejamhoney/nabu-go/internal/pdfgraph"
	"github.com/toejamhoney/nabu-go/internal/store"
)

// ScoreConfig configures one run of the score action.
//
// A single Store handle is shared across workers rather than one per
// worker: Badger's own concurrency model already gives every goroutine an
// independent read transaction over the same *badger.DB, which is the
// isolation a per-process-handle design buys in a connection-pooled store
// without needing Badger's single directory lock released and reacquired
// per worker.
type ScoreConfig struct {
	QueryPath string
	QueryName string // subject name in the CSV output; defaults to QueryPath's base name
	Workers   int
	Threshold float64 // 0 means "report all"
	Store     *store.Store
	Parse     ParseFunc
	// Persist, if set, also commits the query document's own fingerprint
	// to Store once scoring completes. Opt-in: scoring a document does not
	// enroll it as a new structural family by default.
	Persist bool
}

// RunScore extracts the query document's signature, partitions the store's
// distinct structural families across Workers goroutines, and writes CSV
// match rows to out: header once, then one row per family whose Canberra
// distance to the query is <= threshold (threshold 0 reports every family).
func RunScore(ctx context.Context, cfg ScoreConfig, out io.Writer) error {
	parseFn := cfg.Parse
	if parseFn == nil {
		parseFn = defaultParseFunc
	}

	doc, err := parseFn(cfg.QueryPath)
	if err != nil {
		return fmt.Errorf("driver: parsing query %s: %w", cfg.QueryPath, err)
	}
	g, err := pdfgraph.BuildGraph(doc)
	if err != nil {
		return fmt.Errorf("driver: adapting query %s: %w", cfg.QueryPath, err)
	}
	querySig, err := netsimile.Signature(g)
	if err != nil {
		return fmt.Errorf("driver: query signature: %w", err)
	}

	subject := cfg.QueryName
	if subject == "" {
		subject = filepath.Base(cfg.QueryPath)
	}

	families, err := cfg.Store.DistinctEdgeDigests()
	if err != nil {
		return err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	ranges := partition(len(families), workers)

	var mu sync.Mutex
	fmt.Fprintln(out, "subject,family,candidate,score")

	var wg sync.WaitGroup
	var firstErr error
	for _, r := range ranges {
		if r.start >= r.end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			if err := scoreRange(ctx, cfg.Store, families[start:end], subject, querySig, cfg.Threshold, out, &mu); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(r.start, r.end)
	}
	wg.Wait()
	if firstErr != nil {
		return firstErr
	}

	if cfg.Persist {
		rec, err := Fingerprint(subject, g)
		if err != nil {
			return fmt.Errorf("driver: fingerprinting query %s: %w", cfg.QueryPath, err)
		}
		if err := cfg.Store.Put(rec); err != nil {
			return fmt.Errorf("driver: persisting query %s: %w", cfg.QueryPath, err)
		}
	}

	return nil
}

type byteRange struct{ start, end int }

// partition splits [0,n) into contiguous ranges of ceil(n/workers) elements
// each (the last one may be shorter), so there are at most workers ranges.
func partition(n, workers int) []byteRange {
	if workers <= 0 {
		workers = 1
	}
	size := (n + workers - 1) / workers
	if size == 0 {
		return nil
	}
	var ranges []byteRange
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		ranges = append(ranges, byteRange{start, end})
	}
	return ranges
}

func scoreRange(ctx context.Context, s *store.Store, families []string, subject string, querySig []float64, threshold float64, out io.Writer, mu *sync.Mutex) error {
	for _, fam := range families {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		candidate, sig, err := s.GetFamilySignature(fam)
		if err != nil {
			continue
		}
		dist, err := netsimile.CanberraDistance(querySig, sig)
		if err != nil {
			continue
		}
		if threshold != 0 && dist > threshold {
			continue
		}

		mu.Lock()
		fmt.Fprintf(out, "%s,%s,%s,%f\n", subject, fam, candidate, dist)
		mu.Unlock()
	}
	return nil
}
