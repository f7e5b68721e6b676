package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jobpilot/jobpilot/domain/job"
	"github.com/jobpilot/jobpilot/domain/session"
	"github.com/jobpilot/jobpilot/infrastructure/index"
	"github.com/jobpilot/jobpilot/internal/log"
)

// Matcher ranks a user's job list against their profile, resume, and
// skills, merges the scores back onto the jobs, applies site preference
// filtering, and persists the result.
type Matcher struct {
	sessions *Sessions
	idx      *index.SimilarityIndex
	limit    int
	logger   *slog.Logger
}

// NewMatcher creates a Matcher. limit caps how many jobs receive a
// fresh score per run; 0 means the whole list.
func NewMatcher(sessions *Sessions, idx *index.SimilarityIndex, limit int, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{
		sessions: sessions,
		idx:      idx,
		limit:    limit,
		logger:   logger,
	}
}

// Match runs the full matching pipeline for userID and returns the
// scored, reordered job list. The returned list is always valid when the
// session exists: ranking and write-back failures degrade to preserved
// prior scores, never to an error or an empty result.
func (m *Matcher) Match(ctx context.Context, userID string) ([]job.Job, error) {
	sess, err := m.sessions.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobs := sess.Jobs
	if len(jobs) == 0 {
		return []job.Job{}, nil
	}

	logger := log.FromContext(ctx, m.logger)

	m.ensureEmbedded(ctx, jobs, logger)

	ranked, err := m.rank(sess, jobs)
	if err != nil {
		// Nothing to rank against; prior scores and order stand.
		logger.Debug("skipping ranking", "user_id", userID, "reason", err)
		return ranked, nil
	}
	ranked = job.SortByScore(ranked)
	ranked = job.FilterAndPrioritize(ranked, sitePreferences(sess))

	// Ranking succeeded; a failed write-back only costs durability of
	// the scores, so it is logged and swallowed.
	if err := m.sessions.UpdateJobs(ctx, userID, ranked); err != nil {
		logger.Warn("failed to persist ranked jobs", "user_id", userID, "error", err)
	}

	logger.Info("matched jobs", "user_id", userID, "count", len(ranked))
	return ranked, nil
}

// ensureEmbedded indexes every job not yet present in the similarity
// index, then snapshots the index so coverage survives restarts. Runs to
// completion before any ranking read begins.
func (m *Matcher) ensureEmbedded(ctx context.Context, jobs []job.Job, logger *slog.Logger) {
	known := m.idx.JobIDs()

	inserted := 0
	for _, j := range jobs {
		if _, ok := known[j.ID]; ok {
			continue
		}
		m.idx.EmbedJob(j)
		inserted++
	}

	if inserted == 0 {
		return
	}
	if err := m.idx.Serialize(ctx); err != nil {
		logger.Warn("failed to snapshot index after embedding", "inserted", inserted, "error", err)
	}
}

// rank scores jobs against the session's combined signal. Jobs missing
// from the ranking output keep their existing score: an indexing race
// must not regress a previously computed score to zero. Returns
// ErrEmptyQuery (with the untouched list) when the session carries no
// signal to rank against.
func (m *Matcher) rank(sess session.Session, jobs []job.Job) ([]job.Job, error) {
	out := make([]job.Job, len(jobs))
	copy(out, jobs)

	queryText := buildQueryText(sess)
	if queryText == "" {
		return out, ErrEmptyQuery
	}

	limit := len(jobs)
	if m.limit > 0 && m.limit < limit {
		limit = m.limit
	}

	queryVector := m.idx.Embed(queryText)
	matches := m.idx.FindSimilarJobs(queryVector, limit)

	scores := make(map[string]float64, len(matches))
	for _, match := range matches {
		scores[match.JobID] = match.Score
	}

	for i := range out {
		if score, ok := scores[out[i].ID]; ok {
			out[i].MatchScore = score
		}
	}
	return out, nil
}

// buildQueryText concatenates the session's matching signal: skills,
// the raw resume, and the profile's title, tech stack, and role
// keywords.
func buildQueryText(sess session.Session) string {
	parts := make([]string, 0, 8)
	parts = append(parts, sess.Skills...)
	parts = append(parts, sess.ResumeRaw)

	if p := sess.Profile; p != nil {
		parts = append(parts, p.CurrentTitle)
		parts = append(parts, p.TechStack...)
		parts = append(parts, p.RoleKeywords...)
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

func sitePreferences(sess session.Session) map[string]job.SitePreference {
	if sess.Settings == nil {
		return nil
	}
	return sess.Settings.JobSitePreferences
}
