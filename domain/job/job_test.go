package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteName(t *testing.T) {
	assert.Equal(t, "LinkedIn", Job{JobSite: "LinkedIn"}.SiteName())
	assert.Equal(t, UnknownSite, Job{}.SiteName())
}

func TestEmbeddingText(t *testing.T) {
	j := Job{Title: "Backend Engineer", Company: "Acme", Description: "Build APIs in Go."}

	assert.Equal(t, "Backend Engineer at Acme. Build APIs in Go.", j.EmbeddingText())
}

func TestUpsert_AppendsNewJob(t *testing.T) {
	list := []Job{{ID: "a"}, {ID: "b"}}

	out := Upsert(list, Job{ID: "c"})

	require.Len(t, out, 3)
	assert.Equal(t, "c", out[2].ID)
	assert.Len(t, list, 2, "input list must not be mutated")
}

func TestUpsert_ReplacesExistingInPlace(t *testing.T) {
	list := []Job{{ID: "a", Title: "old"}, {ID: "b"}}

	out := Upsert(list, Job{ID: "a", Title: "new"})

	require.Len(t, out, 2)
	assert.Equal(t, "new", out[0].Title)
	assert.Equal(t, "old", list[0].Title, "input list must not be mutated")
}

func TestSortByScore(t *testing.T) {
	jobs := []Job{
		{ID: "low", MatchScore: 10},
		{ID: "high", MatchScore: 90},
		{ID: "mid-1", MatchScore: 50},
		{ID: "mid-2", MatchScore: 50},
	}

	out := SortByScore(jobs)

	require.Len(t, out, 4)
	assert.Equal(t, "high", out[0].ID)
	assert.Equal(t, "mid-1", out[1].ID, "equal scores keep input order")
	assert.Equal(t, "mid-2", out[2].ID)
	assert.Equal(t, "low", out[3].ID)
	assert.Equal(t, "low", jobs[0].ID, "input slice must not be reordered")
}
