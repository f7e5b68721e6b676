package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jobpilot/jobpilot/domain/session"
	"github.com/jobpilot/jobpilot/internal/log"
)

// SkillExtractor turns raw resume text into structured skills. The
// implementation is an external collaborator (an LLM endpoint or a
// heuristic); the core only depends on the shape of its output.
type SkillExtractor interface {
	Extract(ctx context.Context, resumeText string) (session.Extraction, error)
}

// ResumeIntake stores a raw resume on the session and enriches the
// session with extracted skills.
type ResumeIntake struct {
	sessions  *Sessions
	extractor SkillExtractor
	logger    *slog.Logger
}

// NewResumeIntake creates a ResumeIntake.
func NewResumeIntake(sessions *Sessions, extractor SkillExtractor, logger *slog.Logger) *ResumeIntake {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResumeIntake{
		sessions:  sessions,
		extractor: extractor,
		logger:    logger,
	}
}

// Import saves resumeText on the session (creating the session when
// missing) and runs skill extraction. Extraction failure is not fatal:
// the resume is already stored, so the error is logged and the session
// returned without skills.
func (r *ResumeIntake) Import(ctx context.Context, userID, resumeText string) (session.Session, error) {
	userID, err := r.sessions.Save(ctx, userID, session.Partial{ResumeRaw: &resumeText})
	if err != nil {
		return session.Session{}, err
	}

	logger := log.FromContext(ctx, r.logger)

	if r.extractor == nil || strings.TrimSpace(resumeText) == "" {
		return r.sessions.Load(ctx, userID)
	}

	extracted, err := r.extractor.Extract(ctx, resumeText)
	if err != nil {
		logger.Warn("skill extraction failed", "user_id", userID, "error", err)
		return r.sessions.Load(ctx, userID)
	}

	partial := session.Partial{}
	if len(extracted.Skills) > 0 {
		partial.Skills = &extracted.Skills
	}
	if extracted.Seniority != "" {
		partial.Seniority = &extracted.Seniority
	}
	if len(extracted.Domains) > 0 {
		partial.Domains = &extracted.Domains
	}

	updated, err := r.sessions.Update(ctx, userID, partial)
	if err != nil {
		return session.Session{}, err
	}

	logger.Info("resume imported",
		"user_id", userID,
		"skills", len(extracted.Skills),
		"seniority", extracted.Seniority,
	)
	return updated, nil
}
