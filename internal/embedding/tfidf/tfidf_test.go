package tfidf

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedderRequiresPrepare(t *testing.T) {
	e := NewEmbedder()
	_, err := e.Embed(context.Background(), "ssh enable")
	assert.Error(t, err)

	err = e.Prepare(context.Background(), nil)
	assert.Error(t, err)
}

func TestEmbedProducesUnitVectors(t *testing.T) {
	e := NewEmbedder()
	corpus := []string{
		"enable ssh access on gigabit0",
		"disable telnet access everywhere",
		"hostname configuration command",
	}
	require.NoError(t, e.Prepare(context.Background(), corpus))
	assert.Greater(t, e.Dimension(), 0)

	vec, err := e.Embed(context.Background(), "enable ssh on gigabit0")
	require.NoError(t, err)
	require.Len(t, vec, e.Dimension())

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-5)
}

func TestEmbedUnknownTokensYieldZeroVector(t *testing.T) {
	e := NewEmbedder()
	require.NoError(t, e.Prepare(context.Background(), []string{"enable ssh"}))

	vec, err := e.Embed(context.Background(), "zebra xylophone")
	require.NoError(t, err)
	for _, v := range vec {
		assert.Zero(t, v)
	}
}

func TestTokenizerKeepsDigits(t *testing.T) {
	e := NewEmbedder()
	require.NoError(t, e.Prepare(context.Background(), []string{"interface gigabit0", "interface gigabit1"}))

	a, err := e.Embed(context.Background(), "gigabit0")
	require.NoError(t, err)
	b, err := e.Embed(context.Background(), "gigabit1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestEmbedBatchPreservesOrder(t *testing.T) {
	e := NewEmbedder()
	corpus := []string{"enable ssh", "disable telnet"}
	require.NoError(t, e.Prepare(context.Background(), corpus))

	vecs, err := e.EmbedBatch(context.Background(), corpus)
	require.NoError(t, err)
	require.Len(t, vecs, 2)

	single, err := e.Embed(context.Background(), corpus[0])
	require.NoError(t, err)
	assert.Equal(t, single, vecs[0])
}
