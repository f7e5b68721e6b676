// Package persistence provides database storage implementations.
package persistence

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jobpilot/jobpilot/domain/embedding"
	"github.com/jobpilot/jobpilot/domain/job"
	"github.com/jobpilot/jobpilot/domain/session"
)

// scanJSON decodes a JSON column value into dst.
func scanJSON(value any, dst any) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T as JSON", value)
	}

	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}

// Float64Slice stores []float64 as JSON.
type Float64Slice []float64

// Scan implements sql.Scanner.
func (f *Float64Slice) Scan(value any) error { return scanJSON(value, f) }

// Value implements driver.Valuer.
func (f Float64Slice) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal(f)
}

// StringSlice stores []string as JSON.
type StringSlice []string

// Scan implements sql.Scanner.
func (s *StringSlice) Scan(value any) error { return scanJSON(value, s) }

// Value implements driver.Valuer.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// TagsJSON stores embedding.Tags as JSON.
type TagsJSON embedding.Tags

// Scan implements sql.Scanner.
func (t *TagsJSON) Scan(value any) error { return scanJSON(value, t) }

// Value implements driver.Valuer.
func (t TagsJSON) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

// JobsJSON stores a job list as JSON.
type JobsJSON []job.Job

// Scan implements sql.Scanner.
func (j *JobsJSON) Scan(value any) error { return scanJSON(value, j) }

// Value implements driver.Valuer.
func (j JobsJSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// ProfileJSON stores a nullable UserProfile as JSON.
type ProfileJSON struct {
	Profile *session.UserProfile
}

// Scan implements sql.Scanner.
func (p *ProfileJSON) Scan(value any) error {
	if value == nil {
		p.Profile = nil
		return nil
	}
	return scanJSON(value, &p.Profile)
}

// Value implements driver.Valuer.
func (p ProfileJSON) Value() (driver.Value, error) {
	if p.Profile == nil {
		return nil, nil
	}
	return json.Marshal(p.Profile)
}

// SettingsJSON stores nullable Settings as JSON.
type SettingsJSON struct {
	Settings *session.Settings
}

// Scan implements sql.Scanner.
func (s *SettingsJSON) Scan(value any) error {
	if value == nil {
		s.Settings = nil
		return nil
	}
	return scanJSON(value, &s.Settings)
}

// Value implements driver.Valuer.
func (s SettingsJSON) Value() (driver.Value, error) {
	if s.Settings == nil {
		return nil, nil
	}
	return json.Marshal(s.Settings)
}

// SessionModel is the database row for one user session. Timestamps are
// managed by the application, not GORM, so that create leaves
// created_at == updated_at exactly.
type SessionModel struct {
	UserID    string       `gorm:"column:user_id;primaryKey"`
	Profile   ProfileJSON  `gorm:"column:profile;type:json"`
	Skills    StringSlice  `gorm:"column:skills;type:json"`
	Seniority string       `gorm:"column:seniority"`
	Domains   StringSlice  `gorm:"column:domains;type:json"`
	ResumeRaw string       `gorm:"column:resume_raw;type:text"`
	Jobs      JobsJSON     `gorm:"column:jobs;type:json"`
	Settings  SettingsJSON `gorm:"column:settings;type:json"`
	CreatedAt time.Time    `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt time.Time    `gorm:"column:updated_at;autoUpdateTime:false"`
}

// TableName returns the sessions partition name.
func (SessionModel) TableName() string { return "sessions" }

// VectorEntryModel is the database row for one similarity index entry.
type VectorEntryModel struct {
	ID        string       `gorm:"column:id;primaryKey"`
	Embedding Float64Slice `gorm:"column:embedding;type:json"`
	Text      string       `gorm:"column:text;type:text"`
	Tags      TagsJSON     `gorm:"column:tags;type:json"`
}

// TableName returns the vectors partition name.
func (VectorEntryModel) TableName() string { return "vector_entries" }
