// Package job defines the job posting record and site preference
// filtering.
package job

import (
	"sort"
	"time"
)

// ApplicationStatus tracks where a job sits in the application funnel.
type ApplicationStatus string

// ApplicationStatus values.
const (
	StatusNotApplied   ApplicationStatus = "not_applied"
	StatusApplied      ApplicationStatus = "applied"
	StatusInterviewing ApplicationStatus = "interviewing"
	StatusOffer        ApplicationStatus = "offer"
	StatusRejected     ApplicationStatus = "rejected"
)

// Link is a labelled URL attached to a job (custom links, supporting
// materials).
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// PrepTask is one interview preparation step for a job.
type PrepTask struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Details   string `json:"details,omitempty"`
	Completed bool   `json:"completed,omitempty"`
}

// Job is a single job posting in a user's list. ID is unique within the
// list. MatchScore, once computed, is preserved across re-fetches until a
// newer match run explicitly overwrites it.
type Job struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Company             string            `json:"company"`
	URL                 string            `json:"url"`
	Description         string            `json:"description,omitempty"`
	MatchScore          float64           `json:"matchScore,omitempty"`
	Summary             string            `json:"summary,omitempty"`
	PrepTasks           []PrepTask        `json:"prepTasks,omitempty"`
	IsFavorite          bool              `json:"isFavorite,omitempty"`
	ApplicationStatus   ApplicationStatus `json:"applicationStatus,omitempty"`
	Notes               string            `json:"notes,omitempty"`
	CustomLinks         []Link            `json:"customLinks,omitempty"`
	SupportingMaterials []Link            `json:"supportingMaterials,omitempty"`
	JobSite             string            `json:"jobSite,omitempty"`
	Source              string            `json:"source,omitempty"`
	CreatedAt           time.Time         `json:"createdAt,omitempty"`
	UpdatedAt           time.Time         `json:"updatedAt,omitempty"`
	AppliedDate         *time.Time        `json:"appliedDate,omitempty"`
}

// UnknownSite is the bucket name for jobs without a jobSite.
const UnknownSite = "Unknown"

// SiteName returns the job's site, defaulting to UnknownSite.
func (j Job) SiteName() string {
	if j.JobSite == "" {
		return UnknownSite
	}
	return j.JobSite
}

// EmbeddingText builds the canonical text a job is embedded from.
func (j Job) EmbeddingText() string {
	return j.Title + " at " + j.Company + ". " + j.Description
}

// Upsert inserts j into list keyed by ID: an existing job with the same
// ID is replaced in place, otherwise j is appended. Returns the new list.
func Upsert(list []Job, j Job) []Job {
	for i, existing := range list {
		if existing.ID == j.ID {
			out := make([]Job, len(list))
			copy(out, list)
			out[i] = j
			return out
		}
	}
	out := make([]Job, 0, len(list)+1)
	out = append(out, list...)
	return append(out, j)
}

// SortByScore returns a copy of jobs ordered by MatchScore descending.
// The sort is stable so equal scores keep their input order.
func SortByScore(jobs []Job) []Job {
	out := make([]Job, len(jobs))
	copy(out, jobs)
	sort.SliceStable(out, func(i, k int) bool {
		return out[i].MatchScore > out[k].MatchScore
	})
	return out
}
