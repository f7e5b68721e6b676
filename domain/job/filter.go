package job

// SitePreference classifies a job site for filtering and ordering.
type SitePreference string

// SitePreference values.
const (
	SiteInclude SitePreference = "include"
	SiteExclude SitePreference = "exclude"
	SiteNeutral SitePreference = "neutral"
)

// ParseSitePreference normalizes a preference string, defaulting to
// neutral for unknown values.
func ParseSitePreference(s string) SitePreference {
	switch SitePreference(s) {
	case SiteInclude, SiteExclude:
		return SitePreference(s)
	default:
		return SiteNeutral
	}
}

// FilterAndPrioritize partitions jobs by site preference: excluded sites
// are dropped, included sites are placed before neutral ones, and each
// bucket keeps its relative input order. Callers pre-sort by match score,
// so score order is the tiebreak within each bucket.
//
// An empty preference map returns jobs unchanged, preserving slice
// identity for callers relying on stability.
func FilterAndPrioritize(jobs []Job, preferences map[string]SitePreference) []Job {
	if len(preferences) == 0 {
		return jobs
	}

	included := make([]Job, 0, len(jobs))
	neutral := make([]Job, 0, len(jobs))

	for _, j := range jobs {
		switch preferences[j.SiteName()] {
		case SiteExclude:
			// dropped
		case SiteInclude:
			included = append(included, j)
		default:
			neutral = append(neutral, j)
		}
	}

	return append(included, neutral...)
}
