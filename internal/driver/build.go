package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toejamhoney/nabu-go/internal/ledger"
	"github.com/toejamhoney/nabu-go/internal/pdfgraph"
	"github.com/toejamhoney/nabu-go/internal/pdfgraph/parse"
	"github.com/toejamhoney/nabu-go/internal/store"
)

const buildAction = "build"

// ParseFunc produces a pdfgraph.Document from a single input path — the
// seam where a concrete PDF byte parser (out of scope here) would plug in.
// The zero value of BuildConfig uses defaultParseFunc, which treats the
// path as the pre-extracted XML representation parse.Parse expects.
type ParseFunc func(path string) (*pdfgraph.Document, error)

// BuildConfig configures one run of the build action.
type BuildConfig struct {
	ManifestPath string
	Workers      int
	Chunk        int
	Update       bool // if true, ignore the ledger's completed set and redo everything
	Store        *store.Store
	Ledger       *ledger.Ledger // nil disables resumability (cmd/nabu passes nil, with a warning, when the ledger cannot be opened)
	Parse        ParseFunc      // nil uses defaultParseFunc
}

func defaultParseFunc(path string) (*pdfgraph.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse.Parse(f)
}

// RunBuild parses, fingerprints, and persists every path in the manifest,
// skipping work the ledger already marked complete unless cfg.Update is set.
func RunBuild(ctx context.Context, cfg BuildConfig) ([]error, error) {
	parseFn := cfg.Parse
	if parseFn == nil {
		parseFn = defaultParseFunc
	}

	jobID, err := JobID(cfg.ManifestPath, buildAction)
	if err != nil {
		return nil, err
	}

	todo, err := ParseManifest(cfg.ManifestPath)
	if err != nil {
		return nil, err
	}

	if !cfg.Update && cfg.Ledger != nil {
		completed, err := cfg.Ledger.Completed(jobID)
		if err != nil {
			return nil, fmt.Errorf("driver: reading ledger: %w", err)
		}
		todo = subtract(todo, completed)
	}

	process := func(ctx context.Context, path string) error {
		doc, err := parseFn(path)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		g, err := pdfgraph.BuildGraph(doc)
		if err != nil {
			return fmt.Errorf("adapting %s: %w", path, err)
		}
		documentID := filepath.Base(path)
		rec, err := Fingerprint(documentID, g)
		if err != nil {
			return fmt.Errorf("fingerprinting %s: %w", path, err)
		}
		if err := cfg.Store.Put(rec); err != nil {
			return fmt.Errorf("storing %s: %w", path, err)
		}
		if cfg.Ledger != nil {
			if err := cfg.Ledger.Mark(jobID, path); err != nil {
				return fmt.Errorf("marking %s complete: %w", path, err)
			}
		}
		return nil
	}

	errs := runPool(ctx, todo, cfg.Workers, cfg.Chunk, process)
	return errs, nil
}

func subtract(paths []string, done map[string]bool) []string {
	var out []string
	for _, p := range paths {
		if !done[p] {
			out = append(out, p)
		}
	}
	return out
}
