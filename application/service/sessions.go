// Package service provides application layer services that orchestrate
// domain operations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jobpilot/jobpilot/domain/job"
	"github.com/jobpilot/jobpilot/domain/session"
)

// keyedMutex serializes operations per key. Sessions for different
// users are independent, so only same-user writes contend.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for key and returns its unlock function.
func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// Sessions implements the session store contract: whole-record loads,
// partial-field updates, and list-merge-by-id, on top of a durable
// session.Store. Every mutation is a whole-record read-modify-write
// serialized per user id.
type Sessions struct {
	store           session.Store
	locks           *keyedMutex
	defaultSettings *session.Settings
	logger          *slog.Logger
}

// NewSessions creates a Sessions service. defaultSettings, when non-nil,
// seeds the settings of newly created sessions.
func NewSessions(store session.Store, defaultSettings *session.Settings, logger *slog.Logger) *Sessions {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sessions{
		store:           store,
		locks:           newKeyedMutex(),
		defaultSettings: defaultSettings,
		logger:          logger,
	}
}

// Save creates or updates a session. An empty userID mints a new one.
// When a record already exists the partial is applied as an update;
// otherwise a fresh record is created with createdAt == updatedAt.
// Returns the user id the record is stored under.
func (s *Sessions) Save(ctx context.Context, userID string, p session.Partial) (string, error) {
	if userID == "" {
		userID = session.NewUserID()
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	existing, err := s.store.Get(ctx, userID)
	switch {
	case err == nil:
		return userID, s.put(ctx, session.ApplyPartial(existing, p))
	case errors.Is(err, session.ErrNotFound):
		return userID, s.create(ctx, userID, p)
	default:
		return "", err
	}
}

// Load returns the session for userID, or session.ErrNotFound.
func (s *Sessions) Load(ctx context.Context, userID string) (session.Session, error) {
	return s.store.Get(ctx, userID)
}

// Update applies a partial update to an existing session. Unlike every
// other mutation it fails with session.ErrNotFound on a missing record:
// an update addresses a record the caller believes exists.
func (s *Sessions) Update(ctx context.Context, userID string, p session.Partial) (session.Session, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	return s.update(ctx, userID, p)
}

// update is the unlocked core of Update, for callers already holding
// the user's lock.
func (s *Sessions) update(ctx context.Context, userID string, p session.Partial) (session.Session, error) {
	existing, err := s.store.Get(ctx, userID)
	if err != nil {
		return session.Session{}, err
	}

	merged := session.ApplyPartial(existing, p)
	// The key never moves on update, whatever the partial carried.
	merged.UserID = existing.UserID
	if err := s.put(ctx, merged); err != nil {
		return session.Session{}, err
	}
	return merged, nil
}

// UpdateProfile merges a partial profile into the session's profile,
// field by field. A missing session is created on the spot: profile
// updates are the bootstrap path for the whole store and never fail
// with NotFound.
func (s *Sessions) UpdateProfile(ctx context.Context, userID string, profile *session.UserProfile) (session.Session, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	existing, err := s.store.Get(ctx, userID)
	if errors.Is(err, session.ErrNotFound) {
		if err := s.create(ctx, userID, session.Partial{Profile: profile}); err != nil {
			return session.Session{}, err
		}
		return s.store.Get(ctx, userID)
	}
	if err != nil {
		return session.Session{}, err
	}

	existing.Profile = session.MergeProfile(existing.Profile, profile)
	if err := s.put(ctx, existing); err != nil {
		return session.Session{}, err
	}
	return existing, nil
}

// UpdateSettings merges partial settings into the session's settings,
// creating the session when missing.
func (s *Sessions) UpdateSettings(ctx context.Context, userID string, settings *session.Settings) (session.Session, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	existing, err := s.store.Get(ctx, userID)
	if errors.Is(err, session.ErrNotFound) {
		if err := s.create(ctx, userID, session.Partial{Settings: settings}); err != nil {
			return session.Session{}, err
		}
		return s.store.Get(ctx, userID)
	}
	if err != nil {
		return session.Session{}, err
	}

	existing.Settings = session.MergeSettings(existing.Settings, settings)
	if err := s.put(ctx, existing); err != nil {
		return session.Session{}, err
	}
	return existing, nil
}

// UpdateJobs replaces the session's whole job list atomically, creating
// the session when missing.
func (s *Sessions) UpdateJobs(ctx context.Context, userID string, jobs []job.Job) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	_, err := s.update(ctx, userID, session.Partial{Jobs: &jobs})
	if errors.Is(err, session.ErrNotFound) {
		return s.create(ctx, userID, session.Partial{Jobs: &jobs})
	}
	return err
}

// AddJob upserts one job into the session's list by id: a job with the
// same id is replaced, otherwise the job is appended. The whole list is
// then persisted atomically.
func (s *Sessions) AddJob(ctx context.Context, userID string, j job.Job) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	existing, err := s.store.Get(ctx, userID)
	if errors.Is(err, session.ErrNotFound) {
		jobs := []job.Job{j}
		return s.create(ctx, userID, session.Partial{Jobs: &jobs})
	}
	if err != nil {
		return err
	}

	existing.Jobs = job.Upsert(existing.Jobs, j)
	return s.put(ctx, existing)
}

// UpdateSkills replaces the session's skill list.
func (s *Sessions) UpdateSkills(ctx context.Context, userID string, skills []string) error {
	_, err := s.Update(ctx, userID, session.Partial{Skills: &skills})
	return err
}

// UpdateResume replaces the session's raw resume text.
func (s *Sessions) UpdateResume(ctx context.Context, userID string, resume string) error {
	_, err := s.Update(ctx, userID, session.Partial{ResumeRaw: &resume})
	return err
}

// Clear deletes the session. Clearing an absent session is a no-op.
func (s *Sessions) Clear(ctx context.Context, userID string) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	return s.store.Delete(ctx, userID)
}

// All returns every session. Diagnostic and bulk use only.
func (s *Sessions) All(ctx context.Context) ([]session.Session, error) {
	return s.store.All(ctx)
}

// create writes a fresh record for userID with the partial applied.
func (s *Sessions) create(ctx context.Context, userID string, p session.Partial) error {
	now := time.Now().UTC()
	fresh := session.Session{
		UserID:    userID,
		Settings:  session.MergeSettings(nil, s.defaultSettings),
		CreatedAt: now,
		UpdatedAt: now,
	}
	fresh = session.ApplyPartial(fresh, p)
	fresh.UpdatedAt = fresh.CreatedAt

	if err := s.store.Put(ctx, fresh); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	s.logger.Debug("session created", "user_id", userID)
	return nil
}

// put persists a mutated record, bumping UpdatedAt.
func (s *Sessions) put(ctx context.Context, sess session.Session) error {
	sess.UpdatedAt = time.Now().UTC()
	return s.store.Put(ctx, sess)
}
