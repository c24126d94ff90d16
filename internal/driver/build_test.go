package driver_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toejamhoney/nabu-go/internal/driver"
	"github.com/toejamhoney/nabu-go/internal/ledger"
	"github.com/toejamhoney/nabu-go/internal/pdfgraph"
	"github.com/toejamhoney/nabu-go/internal/store"
)

func fakeDocs() map[string]*pdfgraph.Document {
	return map[string]*pdfgraph.Document{
		"one.pdf": {
			Objects: []pdfgraph.Object{
				{ID: "1", Tags: []string{"dict"}, Refs: []string{"2"}},
				{ID: "2", Tags: []string{"dict"}},
			},
			RootRef: "1",
		},
		"two.pdf": {
			Objects: []pdfgraph.Object{
				{ID: "1", Tags: []string{"dict"}},
			},
			RootRef: "1",
		},
	}
}

func fakeParser(docs map[string]*pdfgraph.Document) driver.ParseFunc {
	return func(path string) (*pdfgraph.Document, error) {
		doc, ok := docs[path]
		if !ok {
			return nil, assert.AnError
		}
		return doc, nil
	}
}

func writeManifest(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := dir + "/manifest.txt"
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunBuild_StoresAllManifestEntries(t *testing.T) {
	docs := fakeDocs()
	manifest := writeManifest(t, "one.pdf", "two.pdf")

	s, err := store.Open(store.Options{DataDir: t.TempDir(), InMemory: true})
	require.NoError(t, err)
	defer s.Close()

	errs, err := driver.RunBuild(context.Background(), driver.BuildConfig{
		ManifestPath: manifest,
		Workers:      2,
		Chunk:        10,
		Store:        s,
		Parse:        fakeParser(docs),
	})
	require.NoError(t, err)
	assert.Empty(t, errs)

	n, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rec, err := s.Get("one.pdf")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.EdgeDigest)
	assert.NotEmpty(t, rec.Signature)
}

func TestRunBuild_SkipsLedgerCompletedUnlessUpdate(t *testing.T) {
	docs := fakeDocs()
	manifest := writeManifest(t, "one.pdf", "two.pdf")

	s, err := store.Open(store.Options{DataDir: t.TempDir(), InMemory: true})
	require.NoError(t, err)
	defer s.Close()

	l, err := ledger.Open(ledger.Options{DataDir: t.TempDir(), InMemory: true})
	require.NoError(t, err)
	defer l.Close()

	jobID, err := driver.JobID(manifest, "build")
	require.NoError(t, err)
	require.NoError(t, l.Mark(jobID, "one.pdf"))

	var seen []string
	parse := func(path string) (*pdfgraph.Document, error) {
		seen = append(seen, path)
		return docs[path], nil
	}

	errs, err := driver.RunBuild(context.Background(), driver.BuildConfig{
		ManifestPath: manifest,
		Workers:      1,
		Store:        s,
		Ledger:       l,
		Parse:        parse,
	})
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, []string{"two.pdf"}, seen, "one.pdf was already marked complete and should be skipped")
}

func TestRunBuild_UpdateIgnoresLedger(t *testing.T) {
	docs := fakeDocs()
	manifest := writeManifest(t, "one.pdf", "two.pdf")

	s, err := store.Open(store.Options{DataDir: t.TempDir(), InMemory: true})
	require.NoError(t, err)
	defer s.Close()

	l, err := ledger.Open(ledger.Options{DataDir: t.TempDir(), InMemory: true})
	require.NoError(t, err)
	defer l.Close()

	jobID, err := driver.JobID(manifest, "build")
	require.NoError(t, err)
	require.NoError(t, l.Mark(jobID, "one.pdf"))
	require.NoError(t, l.Mark(jobID, "two.pdf"))

	var seen []string
	parse := func(path string) (*pdfgraph.Document, error) {
		seen = append(seen, path)
		return docs[path], nil
	}

	errs, err := driver.RunBuild(context.Background(), driver.BuildConfig{
		ManifestPath: manifest,
		Workers:      1,
		Update:       true,
		Store:        s,
		Ledger:       l,
		Parse:        parse,
	})
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.ElementsMatch(t, []string{"one.pdf", "two.pdf"}, seen)
}

func TestRunBuild_CollectsPerFileErrorsWithoutAborting(t *testing.T) {
	docs := fakeDocs()
	manifest := writeManifest(t, "one.pdf", "missing.pdf", "two.pdf")

	s, err := store.Open(store.Options{DataDir: t.TempDir(), InMemory: true})
	require.NoError(t, err)
	defer s.Close()

	errs, err := driver.RunBuild(context.Background(), driver.BuildConfig{
		ManifestPath: manifest,
		Workers:      1,
		Store:        s,
		Parse:        fakeParser(docs),
	})
	require.NoError(t, err)
	assert.Len(t, errs, 1)

	n, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, n, "the two valid entries should still have been stored")
}
