package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toejamhoney/nabu-go/internal/driver"
	"github.com/toejamhoney/nabu-go/internal/lgraph"
	"github.com/toejamhoney/nabu-go/internal/store"
)

func TestFingerprint_EdgesPreserveAdapterEmittedOrderAndEndpoints(t *testing.T) {
	g := lgraph.New()
	// Object "5" is asserted first and references "2", which is only added
	// afterward — the higher-index endpoint is emitted first, on purpose.
	require.NoError(t, g.AddEdge("5", "2"))
	require.NoError(t, g.AddEdge("1", "5"))

	rec, err := driver.Fingerprint("doc", g)
	require.NoError(t, err)

	require.Len(t, rec.Edges, 2)
	assert.Equal(t, store.RecordEdge{U: "5", V: "2"}, rec.Edges[0], "endpoint order must match the order AddEdge was called, not ascending vertex index")
	assert.Equal(t, store.RecordEdge{U: "1", V: "5"}, rec.Edges[1], "edges must appear in first-assertion order")
}
