// Package dto defines the request and response shapes of the v1 API.
package dto

import (
	"time"

	"github.com/jobpilot/jobpilot/domain/job"
	"github.com/jobpilot/jobpilot/domain/session"
)

// SessionRequest is a create-or-update session request. Absent fields
// are left untouched; present fields replace their whole value.
type SessionRequest struct {
	UserID    string               `json:"userId,omitempty"`
	Profile   *session.UserProfile `json:"profile,omitempty"`
	Skills    *[]string            `json:"skills,omitempty"`
	Seniority *string              `json:"seniority,omitempty"`
	Domains   *[]string            `json:"domains,omitempty"`
	ResumeRaw *string              `json:"resumeRaw,omitempty"`
	Jobs      *[]job.Job           `json:"jobs,omitempty"`
	Settings  *session.Settings    `json:"settings,omitempty"`
}

// ToPartial converts the request body to a domain partial update.
func (r SessionRequest) ToPartial() session.Partial {
	return session.Partial{
		Profile:   r.Profile,
		Skills:    r.Skills,
		Seniority: r.Seniority,
		Domains:   r.Domains,
		ResumeRaw: r.ResumeRaw,
		Jobs:      r.Jobs,
		Settings:  r.Settings,
	}
}

// SessionResponse is the full session representation.
type SessionResponse struct {
	UserID    string               `json:"userId"`
	Profile   *session.UserProfile `json:"profile,omitempty"`
	Skills    []string             `json:"skills,omitempty"`
	Seniority string               `json:"seniority,omitempty"`
	Domains   []string             `json:"domains,omitempty"`
	ResumeRaw string               `json:"resumeRaw,omitempty"`
	Jobs      []job.Job            `json:"jobs"`
	Settings  *session.Settings    `json:"settings,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// NewSessionResponse builds a SessionResponse from a domain session.
func NewSessionResponse(s session.Session) SessionResponse {
	jobs := s.Jobs
	if jobs == nil {
		jobs = []job.Job{}
	}
	return SessionResponse{
		UserID:    s.UserID,
		Profile:   s.Profile,
		Skills:    s.Skills,
		Seniority: s.Seniority,
		Domains:   s.Domains,
		ResumeRaw: s.ResumeRaw,
		Jobs:      jobs,
		Settings:  s.Settings,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// SaveSessionResponse acknowledges a create-or-update with the user id
// the record is stored under.
type SaveSessionResponse struct {
	UserID string `json:"userId"`
}

// SkillsRequest replaces the session's skill list.
type SkillsRequest struct {
	Skills []string `json:"skills"`
}

// ResumeRequest imports resume text into a session.
type ResumeRequest struct {
	ResumeText string `json:"resumeText"`
}

// JobsRequest replaces the session's whole job list.
type JobsRequest struct {
	Jobs []job.Job `json:"jobs"`
}
