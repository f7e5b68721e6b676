package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntry_CopiesInputs(t *testing.T) {
	vector := []float64{1, 2, 3}
	tags := Tags{TagType: TypeJob, TagJobID: "j1"}

	e := NewEntry("vec_1", vector, "text", tags)

	vector[0] = 99
	tags[TagJobID] = "mutated"

	assert.Equal(t, []float64{1, 2, 3}, e.Vector())
	assert.Equal(t, "j1", e.Tag(TagJobID))
}

func TestEntry_AccessorsReturnCopies(t *testing.T) {
	e := NewEntry("vec_1", []float64{1, 2}, "text", Tags{TagType: TypeJob})

	e.Vector()[0] = 99
	e.Tags()[TagType] = "mutated"

	assert.Equal(t, []float64{1, 2}, e.Vector())
	assert.Equal(t, TypeJob, e.Tag(TagType))
}

func TestEntry_IsJob(t *testing.T) {
	assert.True(t, NewEntry("a", nil, "", Tags{TagType: TypeJob}).IsJob())
	assert.False(t, NewEntry("b", nil, "", Tags{TagType: TypeUserProfile}).IsJob())
	assert.False(t, NewEntry("c", nil, "", nil).IsJob())
}

func TestEntry_SimilarityTo(t *testing.T) {
	e := NewEntry("vec_1", []float64{1, 0}, "", nil)

	assert.InDelta(t, 1.0, e.SimilarityTo([]float64{1, 0}), 1e-9)
	assert.InDelta(t, 0.0, e.SimilarityTo([]float64{0, 1}), 1e-9)
}
