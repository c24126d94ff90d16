package driver_test

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toejamhoney/nabu-go/internal/driver"
	"github.com/toejamhoney/nabu-go/internal/pdfgraph"
	"github.com/toejamhoney/nabu-go/internal/store"
)

func buildTestStore(t *testing.T, docs map[string]*pdfgraph.Document) *store.Store {
	t.Helper()
	manifest := writeManifest(t, keysOf(docs)...)

	s, err := store.Open(store.Options{DataDir: t.TempDir(), InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	errs, err := driver.RunBuild(context.Background(), driver.BuildConfig{
		ManifestPath: manifest,
		Workers:      2,
		Store:        s,
		Parse:        fakeParser(docs),
	})
	require.NoError(t, err)
	require.Empty(t, errs)
	return s
}

func keysOf(m map[string]*pdfgraph.Document) []string {
	var out []string
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestRunScore_EmitsHeaderAndOneRowPerFamily(t *testing.T) {
	docs := fakeDocs()
	s := buildTestStore(t, docs)

	queryDoc := docs["one.pdf"]
	var out bytes.Buffer
	err := driver.RunScore(context.Background(), driver.ScoreConfig{
		QueryPath: "one.pdf",
		QueryName: "query.pdf",
		Workers:   2,
		Threshold: 0,
		Store:     s,
		Parse:     fakeParser(map[string]*pdfgraph.Document{"one.pdf": queryDoc}),
	}, &out)
	require.NoError(t, err)

	lines := splitNonEmptyLines(out.String())
	require.NotEmpty(t, lines)
	assert.Equal(t, "subject,family,candidate,score", lines[0])

	families, err := s.DistinctEdgeDigests()
	require.NoError(t, err)
	assert.Len(t, lines[1:], len(families))

	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "query.pdf,"))
	}
}

func TestRunScore_ThresholdFiltersRows(t *testing.T) {
	docs := fakeDocs()
	s := buildTestStore(t, docs)

	queryDoc := docs["one.pdf"]
	var out bytes.Buffer
	err := driver.RunScore(context.Background(), driver.ScoreConfig{
		QueryPath: "one.pdf",
		QueryName: "query.pdf",
		Workers:   1,
		Threshold: -1, // unreachable: every nonnegative distance exceeds a negative threshold
		Store:     s,
		Parse:     fakeParser(map[string]*pdfgraph.Document{"one.pdf": queryDoc}),
	}, &out)
	require.NoError(t, err)

	lines := splitNonEmptyLines(out.String())
	require.Len(t, lines, 1, "threshold below zero is no longer the report-all sentinel and should admit nothing")
}

func TestRunScore_DoesNotPersistQueryByDefault(t *testing.T) {
	docs := fakeDocs()
	s := buildTestStore(t, docs)
	sizeBefore, err := s.Size()
	require.NoError(t, err)

	var out bytes.Buffer
	err = driver.RunScore(context.Background(), driver.ScoreConfig{
		QueryPath: "query.pdf",
		QueryName: "query.pdf",
		Workers:   1,
		Store:     s,
		Parse:     fakeParser(map[string]*pdfgraph.Document{"query.pdf": docs["one.pdf"]}),
	}, &out)
	require.NoError(t, err)

	sizeAfter, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, sizeBefore, sizeAfter)
	_, err = s.Get("query.pdf")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRunScore_PersistOptsInToStoringTheQuery(t *testing.T) {
	docs := fakeDocs()
	s := buildTestStore(t, docs)
	sizeBefore, err := s.Size()
	require.NoError(t, err)

	var out bytes.Buffer
	err = driver.RunScore(context.Background(), driver.ScoreConfig{
		QueryPath: "query.pdf",
		QueryName: "query.pdf",
		Workers:   1,
		Store:     s,
		Parse:     fakeParser(map[string]*pdfgraph.Document{"query.pdf": docs["one.pdf"]}),
		Persist:   true,
	}, &out)
	require.NoError(t, err)

	sizeAfter, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, sizeBefore+1, sizeAfter)
	_, err = s.Get("query.pdf")
	assert.NoError(t, err)
}

func splitNonEmptyLines(s string) []string {
	var out []string
	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
