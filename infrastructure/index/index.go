// Package index provides the in-memory similarity index over embedded
// text entries, with whole-snapshot persistence.
package index

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/jobpilot/jobpilot/domain/embedding"
	"github.com/jobpilot/jobpilot/domain/job"
)

// Document is one text to index with its tags.
type Document struct {
	Text string
	Tags embedding.Tags
}

// SearchResult is one raw-similarity search hit.
type SearchResult struct {
	Text  string
	Score float64
	Tags  embedding.Tags
}

// JobMatch is one job ranking hit with a display score in [0,100].
type JobMatch struct {
	JobID string
	Score float64
	Tags  embedding.Tags
}

// SnapshotStore persists whole snapshots of the index.
type SnapshotStore interface {
	// ReplaceAll replaces the durable snapshot with entries.
	ReplaceAll(ctx context.Context, entries []embedding.Entry) error

	// All loads the durable snapshot; empty store yields an empty slice.
	All(ctx context.Context) ([]embedding.Entry, error)
}

// SimilarityIndex is an append-only collection of embedded entries.
// Entries are immutable once inserted; re-embedding means removal plus
// reinsertion. The index is an in-memory cache of authoritative session
// data — losing it loses no job records, only ranking coverage until
// jobs are re-embedded.
//
// All operations are safe for concurrent use; structural mutations are
// serialized against reads by an internal lock.
type SimilarityIndex struct {
	mu        sync.RWMutex
	entries   []embedding.Entry
	embedder  embedding.Embedder
	snapshots SnapshotStore
	logger    *slog.Logger
}

// NewSimilarityIndex creates an empty SimilarityIndex.
func NewSimilarityIndex(snapshots SnapshotStore, logger *slog.Logger) *SimilarityIndex {
	if logger == nil {
		logger = slog.Default()
	}
	return &SimilarityIndex{
		embedder:  embedding.NewEmbedder(),
		snapshots: snapshots,
		logger:    logger,
	}
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// newEntryID generates vec_<nanos>_<alnum>: the timestamp keeps ids
// monotonic-ish, the random suffix avoids collisions under concurrent
// inserts in the same instant.
func newEntryID() string {
	suffix := make([]byte, 8)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("vec_%d_%s", time.Now().UnixNano(), suffix)
}

// Insert embeds text, stores an entry for it, and returns the entry id.
func (x *SimilarityIndex) Insert(text string, tags embedding.Tags) string {
	entry := embedding.NewEntry(newEntryID(), x.embedder.Embed(text), text, tags)

	x.mu.Lock()
	x.entries = append(x.entries, entry)
	x.mu.Unlock()

	return entry.ID()
}

// Upsert removes every entry whose tags[tagKey] == tagValue, then inserts
// docs as a new batch. Supports full re-indexing of a logical document
// group under one discriminator.
func (x *SimilarityIndex) Upsert(tagKey, tagValue string, docs []Document) []string {
	fresh := make([]embedding.Entry, len(docs))
	ids := make([]string, len(docs))
	for i, d := range docs {
		fresh[i] = embedding.NewEntry(newEntryID(), x.embedder.Embed(d.Text), d.Text, d.Tags)
		ids[i] = fresh[i].ID()
	}

	x.mu.Lock()
	kept := x.entries[:0]
	for _, e := range x.entries {
		if e.Tag(tagKey) != tagValue {
			kept = append(kept, e)
		}
	}
	x.entries = append(kept, fresh...)
	x.mu.Unlock()

	return ids
}

// EmbedJob indexes a job posting under its canonical text, tagged with
// the job's identity. Idempotent by job id: an existing entry for the
// same job is replaced, so racing "ensure embedded" passes are harmless.
func (x *SimilarityIndex) EmbedJob(j job.Job) string {
	text := j.EmbeddingText()
	entry := embedding.NewEntry(newEntryID(), x.embedder.Embed(text), text, embedding.Tags{
		embedding.TagType:    embedding.TypeJob,
		embedding.TagJobID:   j.ID,
		embedding.TagTitle:   j.Title,
		embedding.TagCompany: j.Company,
	})

	x.mu.Lock()
	kept := x.entries[:0]
	for _, e := range x.entries {
		if !(e.IsJob() && e.Tag(embedding.TagJobID) == j.ID) {
			kept = append(kept, e)
		}
	}
	x.entries = append(kept, entry)
	x.mu.Unlock()

	return entry.ID()
}

// Search embeds queryText and returns up to topK entries with positive
// cosine similarity, ordered by score descending.
func (x *SimilarityIndex) Search(queryText string, topK int) []SearchResult {
	query := x.embedder.Embed(queryText)

	x.mu.RLock()
	results := make([]SearchResult, 0, len(x.entries))
	for _, e := range x.entries {
		score := e.SimilarityTo(query)
		if score <= 0 {
			continue
		}
		results = append(results, SearchResult{
			Text:  e.Text(),
			Score: score,
			Tags:  e.Tags(),
		})
	}
	x.mu.RUnlock()

	sort.SliceStable(results, func(i, k int) bool {
		return results[i].Score > results[k].Score
	})

	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results
}

// FindSimilarJobs ranks job-tagged entries against a query vector.
// Cosine similarity is remapped to a display score in [0,100]; entries
// without a job id or with score 0 are dropped. Results are ordered by
// score descending and truncated to limit.
func (x *SimilarityIndex) FindSimilarJobs(queryVector []float64, limit int) []JobMatch {
	if limit <= 0 {
		return []JobMatch{}
	}

	x.mu.RLock()
	matches := make([]JobMatch, 0, len(x.entries))
	for _, e := range x.entries {
		if !e.IsJob() {
			continue
		}
		jobID := e.Tag(embedding.TagJobID)
		if jobID == "" {
			continue
		}
		score := embedding.MatchScore(e.SimilarityTo(queryVector))
		if score <= 0 {
			continue
		}
		matches = append(matches, JobMatch{
			JobID: jobID,
			Score: score,
			Tags:  e.Tags(),
		})
	}
	x.mu.RUnlock()

	sort.SliceStable(matches, func(i, k int) bool {
		return matches[i].Score > matches[k].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// JobIDs returns the set of job ids currently embedded in the index.
func (x *SimilarityIndex) JobIDs() map[string]struct{} {
	x.mu.RLock()
	defer x.mu.RUnlock()

	ids := make(map[string]struct{})
	for _, e := range x.entries {
		if e.IsJob() {
			if id := e.Tag(embedding.TagJobID); id != "" {
				ids[id] = struct{}{}
			}
		}
	}
	return ids
}

// All returns a copy of every entry.
func (x *SimilarityIndex) All() []embedding.Entry {
	x.mu.RLock()
	defer x.mu.RUnlock()

	entries := make([]embedding.Entry, len(x.entries))
	copy(entries, x.entries)
	return entries
}

// Len returns the number of entries.
func (x *SimilarityIndex) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.entries)
}

// Clear drops every entry.
func (x *SimilarityIndex) Clear() {
	x.mu.Lock()
	x.entries = nil
	x.mu.Unlock()
}

// Embed exposes the index's embedder for query-side vectorization.
func (x *SimilarityIndex) Embed(text string) []float64 {
	return x.embedder.Embed(text)
}

// Serialize replaces the durable snapshot with the current in-memory
// entry set. Idempotent.
func (x *SimilarityIndex) Serialize(ctx context.Context) error {
	entries := x.All()
	if err := x.snapshots.ReplaceAll(ctx, entries); err != nil {
		return fmt.Errorf("serialize index: %w", err)
	}
	x.logger.Debug("index snapshot written", "entries", len(entries))
	return nil
}

// Deserialize replaces in-memory state with the durable snapshot. An
// empty durable store is a no-op, not an error. Idempotent.
func (x *SimilarityIndex) Deserialize(ctx context.Context) error {
	entries, err := x.snapshots.All(ctx)
	if err != nil {
		return fmt.Errorf("deserialize index: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	x.mu.Lock()
	x.entries = entries
	x.mu.Unlock()

	x.logger.Debug("index snapshot loaded", "entries", len(entries))
	return nil
}
