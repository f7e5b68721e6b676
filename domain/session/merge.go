package session

import "github.com/jobpilot/jobpilot/domain/job"

// ApplyPartial returns s with the non-nil fields of p applied as whole-
// value replacements. UserID and CreatedAt are never touched; the caller
// bumps UpdatedAt. Unprovided fields are retained as-is — a partial
// update must never lose unrelated state.
func ApplyPartial(s Session, p Partial) Session {
	if p.Profile != nil {
		profile := *p.Profile
		s.Profile = &profile
	}
	if p.Skills != nil {
		s.Skills = append([]string(nil), *p.Skills...)
	}
	if p.Seniority != nil {
		s.Seniority = *p.Seniority
	}
	if p.Domains != nil {
		s.Domains = append([]string(nil), *p.Domains...)
	}
	if p.ResumeRaw != nil {
		s.ResumeRaw = *p.ResumeRaw
	}
	if p.Jobs != nil {
		s.Jobs = append([]job.Job(nil), *p.Jobs...)
	}
	if p.Settings != nil {
		s.Settings = MergeSettings(s.Settings, p.Settings)
	}
	return s
}

// MergeProfile merges incoming into base field by field and returns a new
// value. Provided (non-zero) fields of incoming override; everything else
// is kept from base. This is the nested counterpart to the shallow
// top-level merge in ApplyPartial.
func MergeProfile(base, incoming *UserProfile) *UserProfile {
	if incoming == nil {
		if base == nil {
			return nil
		}
		merged := *base
		return &merged
	}
	if base == nil {
		merged := *incoming
		return &merged
	}

	merged := *base
	if incoming.Name != "" {
		merged.Name = incoming.Name
	}
	if incoming.Email != "" {
		merged.Email = incoming.Email
	}
	if incoming.Location != "" {
		merged.Location = incoming.Location
	}
	if incoming.CurrentTitle != "" {
		merged.CurrentTitle = incoming.CurrentTitle
	}
	if incoming.YearsExperience != 0 {
		merged.YearsExperience = incoming.YearsExperience
	}
	if incoming.TechStack != nil {
		merged.TechStack = append([]string(nil), incoming.TechStack...)
	}
	if incoming.RoleKeywords != nil {
		merged.RoleKeywords = append([]string(nil), incoming.RoleKeywords...)
	}
	if incoming.Summary != "" {
		merged.Summary = incoming.Summary
	}
	return &merged
}

// MergeSettings merges incoming into base and returns a new value. Site
// preferences merge key-wise (existing sites keep their preference unless
// the incoming map names them); a provided custom site list replaces the
// old one wholesale.
func MergeSettings(base, incoming *Settings) *Settings {
	if incoming == nil {
		if base == nil {
			return nil
		}
		return cloneSettings(base)
	}
	if base == nil {
		return cloneSettings(incoming)
	}

	merged := cloneSettings(base)
	if incoming.JobSitePreferences != nil {
		if merged.JobSitePreferences == nil {
			merged.JobSitePreferences = make(map[string]job.SitePreference, len(incoming.JobSitePreferences))
		}
		for site, pref := range incoming.JobSitePreferences {
			merged.JobSitePreferences[site] = pref
		}
	}
	if incoming.CustomJobSites != nil {
		merged.CustomJobSites = append([]string(nil), incoming.CustomJobSites...)
	}
	return merged
}

func cloneSettings(s *Settings) *Settings {
	clone := Settings{}
	if s.JobSitePreferences != nil {
		clone.JobSitePreferences = make(map[string]job.SitePreference, len(s.JobSitePreferences))
		for site, pref := range s.JobSitePreferences {
			clone.JobSitePreferences[site] = pref
		}
	}
	if s.CustomJobSites != nil {
		clone.CustomJobSites = append([]string(nil), s.CustomJobSites...)
	}
	return &clone
}
