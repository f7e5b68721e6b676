package persistence

import (
	"github.com/jobpilot/jobpilot/domain/embedding"
	"github.com/jobpilot/jobpilot/domain/job"
	"github.com/jobpilot/jobpilot/domain/session"
)

// SessionMapper converts between session.Session and SessionModel.
type SessionMapper struct{}

// ToModel converts a domain session to its database row.
func (SessionMapper) ToModel(s session.Session) SessionModel {
	return SessionModel{
		UserID:    s.UserID,
		Profile:   ProfileJSON{Profile: s.Profile},
		Skills:    StringSlice(s.Skills),
		Seniority: s.Seniority,
		Domains:   StringSlice(s.Domains),
		ResumeRaw: s.ResumeRaw,
		Jobs:      JobsJSON(s.Jobs),
		Settings:  SettingsJSON{Settings: s.Settings},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToDomain converts a database row to a domain session.
func (SessionMapper) ToDomain(m SessionModel) session.Session {
	return session.Session{
		UserID:    m.UserID,
		Profile:   m.Profile.Profile,
		Skills:    []string(m.Skills),
		Seniority: m.Seniority,
		Domains:   []string(m.Domains),
		ResumeRaw: m.ResumeRaw,
		Jobs:      []job.Job(m.Jobs),
		Settings:  m.Settings.Settings,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// VectorEntryMapper converts between embedding.Entry and VectorEntryModel.
type VectorEntryMapper struct{}

// ToModel converts a domain entry to its database row.
func (VectorEntryMapper) ToModel(e embedding.Entry) VectorEntryModel {
	return VectorEntryModel{
		ID:        e.ID(),
		Embedding: Float64Slice(e.Vector()),
		Text:      e.Text(),
		Tags:      TagsJSON(e.Tags()),
	}
}

// ToDomain converts a database row to a domain entry.
func (VectorEntryMapper) ToDomain(m VectorEntryModel) embedding.Entry {
	return embedding.NewEntry(m.ID, []float64(m.Embedding), m.Text, embedding.Tags(m.Tags))
}
