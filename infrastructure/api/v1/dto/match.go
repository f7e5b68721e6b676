package dto

import "github.com/jobpilot/jobpilot/domain/job"

// MatchResponse is the scored, reordered job list of a match run.
type MatchResponse struct {
	Jobs  []job.Job `json:"jobs"`
	Count int       `json:"count"`
}

// NewMatchResponse builds a MatchResponse.
func NewMatchResponse(jobs []job.Job) MatchResponse {
	if jobs == nil {
		jobs = []job.Job{}
	}
	return MatchResponse{Jobs: jobs, Count: len(jobs)}
}
