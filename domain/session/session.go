// Package session defines the per-user persisted state and its merge
// semantics. A session owns the authoritative job list and profile; the
// similarity index is a derived, rebuildable cache of it.
package session

import (
	"time"

	"github.com/jobpilot/jobpilot/domain/job"
)

// UserProfile is the user's professional profile.
type UserProfile struct {
	Name            string   `json:"name,omitempty"`
	Email           string   `json:"email,omitempty"`
	Location        string   `json:"location,omitempty"`
	CurrentTitle    string   `json:"currentTitle,omitempty"`
	YearsExperience int      `json:"yearsExperience,omitempty"`
	TechStack       []string `json:"techStack,omitempty"`
	RoleKeywords    []string `json:"roleKeywords,omitempty"`
	Summary         string   `json:"summary,omitempty"`
}

// Settings holds per-user preferences.
type Settings struct {
	JobSitePreferences map[string]job.SitePreference `json:"jobSitePreferences,omitempty"`
	CustomJobSites     []string                      `json:"customJobSites,omitempty"`
}

// Session is the complete persisted state for one user, keyed by UserID.
// Created on first write; every mutation bumps UpdatedAt; deleted only by
// explicit reset, never by expiry.
type Session struct {
	UserID    string       `json:"userId"`
	Profile   *UserProfile `json:"profile,omitempty"`
	Skills    []string     `json:"skills,omitempty"`
	Seniority string       `json:"seniority,omitempty"`
	Domains   []string     `json:"domains,omitempty"`
	ResumeRaw string       `json:"resumeRaw,omitempty"`
	Jobs      []job.Job    `json:"jobs,omitempty"`
	Settings  *Settings    `json:"settings,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// Extraction is the structured result of the skill-extraction
// collaborator: what a resume says about the user.
type Extraction struct {
	Skills     []string `json:"skills"`
	Seniority  string   `json:"seniority"`
	Domains    []string `json:"domains"`
	Experience int      `json:"experience"`
}

// Partial is a partial session update. Only non-nil fields are applied;
// each provided field replaces its whole top-level value (the job list is
// replaced atomically, never per-field).
type Partial struct {
	Profile   *UserProfile
	Skills    *[]string
	Seniority *string
	Domains   *[]string
	ResumeRaw *string
	Jobs      *[]job.Job
	Settings  *Settings
}
