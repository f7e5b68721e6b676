package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicExtract(t *testing.T) {
	h := NewHeuristicExtractor()

	extracted, err := h.Extract(context.Background(), `
Senior backend engineer with 10 years in fintech.
Daily tools: Go, PostgreSQL, Docker, Kubernetes.
Shipped payments infrastructure on AWS.`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "AWS"}, extracted.Skills)
	assert.Equal(t, "senior", extracted.Seniority)
	assert.Equal(t, []string{"fintech"}, extracted.Domains)
}

func TestHeuristicExtract_Deterministic(t *testing.T) {
	h := NewHeuristicExtractor()
	text := "golang and python developer, k8s on gcp"

	a, err := h.Extract(context.Background(), text)
	require.NoError(t, err)
	b, err := h.Extract(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestHeuristicExtract_Aliases(t *testing.T) {
	h := NewHeuristicExtractor()

	extracted, err := h.Extract(context.Background(), "golang with k8s and postgres")
	require.NoError(t, err)

	assert.Contains(t, extracted.Skills, "Go")
	assert.Contains(t, extracted.Skills, "Kubernetes")
	assert.Contains(t, extracted.Skills, "PostgreSQL")
}

func TestHeuristicExtract_SeniorityHighestWins(t *testing.T) {
	h := NewHeuristicExtractor()

	extracted, err := h.Extract(context.Background(), "senior engineer promoted to staff engineer")
	require.NoError(t, err)

	assert.Equal(t, "staff", extracted.Seniority)
}

func TestHeuristicExtract_NothingRecognized(t *testing.T) {
	h := NewHeuristicExtractor()

	extracted, err := h.Extract(context.Background(), "gardening enthusiast and amateur baker")
	require.NoError(t, err)

	assert.Empty(t, extracted.Skills)
	assert.Empty(t, extracted.Domains)
	assert.Empty(t, extracted.Seniority)
}

func TestTokenize_TrimsPunctuation(t *testing.T) {
	tokens := tokenize("Go, Docker; (Kubernetes) \"AWS\"")

	assert.Equal(t, []string{"go", "docker", "kubernetes", "aws"}, tokens)
}
