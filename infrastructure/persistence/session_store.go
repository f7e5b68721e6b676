package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/jobpilot/jobpilot/domain/session"
	"github.com/jobpilot/jobpilot/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionStore implements session.Store using GORM.
type SessionStore struct {
	db     database.Database
	mapper SessionMapper
}

// NewSessionStore creates a SessionStore.
func NewSessionStore(db database.Database) SessionStore {
	return SessionStore{db: db}
}

// Put creates or replaces the record for s.UserID.
func (st SessionStore) Put(ctx context.Context, s session.Session) error {
	model := st.mapper.ToModel(s)
	result := st.db.Session(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&model)
	if result.Error != nil {
		return fmt.Errorf("put session %s: %w", s.UserID, result.Error)
	}
	return nil
}

// Get loads the record for userID, or session.ErrNotFound.
func (st SessionStore) Get(ctx context.Context, userID string) (session.Session, error) {
	var model SessionModel
	result := st.db.Session(ctx).Where("user_id = ?", userID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return session.Session{}, fmt.Errorf("%w: %s", session.ErrNotFound, userID)
		}
		return session.Session{}, fmt.Errorf("get session %s: %w", userID, result.Error)
	}
	return st.mapper.ToDomain(model), nil
}

// Delete removes the record for userID. Absent records are a no-op.
func (st SessionStore) Delete(ctx context.Context, userID string) error {
	result := st.db.Session(ctx).Where("user_id = ?", userID).Delete(&SessionModel{})
	if result.Error != nil {
		return fmt.Errorf("delete session %s: %w", userID, result.Error)
	}
	return nil
}

// All returns every session record.
func (st SessionStore) All(ctx context.Context) ([]session.Session, error) {
	var models []SessionModel
	result := st.db.Session(ctx).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("list sessions: %w", result.Error)
	}

	sessions := make([]session.Session, len(models))
	for i, m := range models {
		sessions[i] = st.mapper.ToDomain(m)
	}
	return sessions, nil
}
