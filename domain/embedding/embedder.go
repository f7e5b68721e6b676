// Package embedding provides deterministic text embeddings and vector
// similarity primitives for job matching.
package embedding

import "strings"

// Dimension is the fixed length of every embedding vector.
const Dimension = 128

// Embedder maps text to a fixed-length term-frequency vector.
// It is stateless: identical input always yields an identical vector.
type Embedder struct{}

// NewEmbedder creates an Embedder.
func NewEmbedder() Embedder {
	return Embedder{}
}

// Embed converts text to a Dimension-length vector. The text is
// lower-cased and whitespace-tokenized; each distinct token is assigned
// the vector slot matching its first-appearance order, holding the
// token's frequency (occurrences / total tokens). Tokens beyond slot
// Dimension-1 are dropped. Empty text yields the zero vector.
//
// Slot assignment is per-call, not a shared vocabulary: two texts'
// vectors only align on dimensions to the degree their token orderings
// coincide. Kept intentionally for compatibility with the stored
// snapshots produced by earlier versions.
func (Embedder) Embed(text string) []float64 {
	vector := make([]float64, Dimension)

	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return vector
	}

	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	total := float64(len(tokens))
	for slot, tok := range order {
		if slot >= Dimension {
			break
		}
		vector[slot] = float64(counts[tok]) / total
	}

	return vector
}
