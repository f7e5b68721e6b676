package embedding

import "maps"

// Tag keys used on vector entries.
const (
	TagType    = "type"
	TagJobID   = "jobId"
	TagTitle   = "title"
	TagCompany = "company"
)

// Entry type discriminators.
const (
	TypeJob         = "job"
	TypeUserProfile = "user_profile"
)

// Tags is the metadata attached to a vector entry.
type Tags map[string]string

// Clone returns a copy of the tag map.
func (t Tags) Clone() Tags {
	if t == nil {
		return Tags{}
	}
	return maps.Clone(t)
}

// Entry is one immutable record in the similarity index: an id, the
// stored vector, the source text it was embedded from, and tags.
// Re-embedding requires removal and reinsertion, never mutation.
type Entry struct {
	id     string
	vector []float64
	text   string
	tags   Tags
}

// NewEntry creates an Entry, copying the vector and tags.
func NewEntry(id string, vector []float64, text string, tags Tags) Entry {
	vec := make([]float64, len(vector))
	copy(vec, vector)
	return Entry{
		id:     id,
		vector: vec,
		text:   text,
		tags:   tags.Clone(),
	}
}

// ID returns the entry identifier.
func (e Entry) ID() string { return e.id }

// Vector returns the stored vector (copy).
func (e Entry) Vector() []float64 {
	vec := make([]float64, len(e.vector))
	copy(vec, e.vector)
	return vec
}

// Text returns the source text the vector was computed from.
func (e Entry) Text() string { return e.text }

// Tags returns the entry tags (copy).
func (e Entry) Tags() Tags { return e.tags.Clone() }

// Tag returns the value of a single tag, or "" if absent.
func (e Entry) Tag(key string) string { return e.tags[key] }

// IsJob reports whether the entry is tagged as a job posting.
func (e Entry) IsJob() bool { return e.tags[TagType] == TypeJob }

// SimilarityTo computes cosine similarity against a query vector without
// copying the stored vector.
func (e Entry) SimilarityTo(query []float64) float64 {
	return CosineSimilarity(query, e.vector)
}
