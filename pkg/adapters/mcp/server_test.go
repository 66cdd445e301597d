package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sortscope"
	"github.com/aretw0/sortscope/pkg/domain"
)

func newTestServer() *Server {
	return NewServer(sortscope.New(sortscope.WithSeed(1)), "test", nil)
}

func TestListAlgorithms(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleListAlgorithms(context.Background(), mcp.CallToolRequest{}, map[string]any{})
	require.NoError(t, err)
	assert.Len(t, resp.Algorithms, 20)

	resp, err = s.handleListAlgorithms(context.Background(), mcp.CallToolRequest{}, map[string]any{"category": "divide-conquer"})
	require.NoError(t, err)
	ids := make([]domain.AlgorithmID, 0, len(resp.Algorithms))
	for _, d := range resp.Algorithms {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []domain.AlgorithmID{domain.AlgorithmMerge, domain.AlgorithmQuick, domain.AlgorithmHeap}, ids)
}

func TestDescribe(t *testing.T) {
	s := newTestServer()

	d, err := s.handleDescribe(context.Background(), mcp.CallToolRequest{}, map[string]any{"id": "radix"})
	require.NoError(t, err)
	assert.Equal(t, domain.AlgorithmRadix, d.ID)

	_, err = s.handleDescribe(context.Background(), mcp.CallToolRequest{}, map[string]any{"id": "nope"})
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestSort(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleSort(context.Background(), mcp.CallToolRequest{}, map[string]any{
		"algorithm": "bubble",
		"values":    "5, 3, 1",
	})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 1}, resp.Input)
	assert.Equal(t, []int{1, 3, 5}, resp.Final)
	assert.Equal(t, 3, resp.Stats.Comparisons)
	assert.Equal(t, 9, resp.StepCount)
	assert.Nil(t, resp.Steps)
}

func TestSort_GeneratedWithSteps(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleSort(context.Background(), mcp.CallToolRequest{}, map[string]any{
		"algorithm":     "unknown",
		"size":          float64(12),
		"seed":          float64(3),
		"include_steps": true,
	})
	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Equal(t, domain.AlgorithmBubble, resp.Algorithm)
	assert.Len(t, resp.Final, 12)
	assert.Len(t, resp.Steps, resp.StepCount)
}

func TestSort_Rejects(t *testing.T) {
	s := newTestServer()

	_, err := s.handleSort(context.Background(), mcp.CallToolRequest{}, map[string]any{"algorithm": "quick", "values": "1,x"})
	assert.ErrorIs(t, err, domain.ErrInvalidValues)

	_, err = s.handleSort(context.Background(), mcp.CallToolRequest{}, map[string]any{"algorithm": "quick", "size": float64(5000)})
	assert.ErrorIs(t, err, domain.ErrTooManyElements)

	_, err = s.handleSort(context.Background(), mcp.CallToolRequest{}, map[string]any{"algorithm": "stooge", "size": float64(256)})
	assert.ErrorIs(t, err, domain.ErrTooManyElements)

	_, err = s.handleSort(context.Background(), mcp.CallToolRequest{}, map[string]any{"algorithm": "quick", "seed": float64(-3)})
	assert.ErrorIs(t, err, domain.ErrInvalidValues)
}

func TestReadCatalog(t *testing.T) {
	s := newTestServer()

	contents, err := s.readCatalog(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, CatalogURI, text.URI)

	var descs []domain.Descriptor
	require.NoError(t, json.Unmarshal([]byte(text.Text), &descs))
	assert.Len(t, descs, 20)
}
