package persistence

import (
	"context"
	"fmt"

	"github.com/jobpilot/jobpilot/domain/embedding"
	"github.com/jobpilot/jobpilot/internal/database"
	"gorm.io/gorm"
)

// snapshotBatchSize bounds the row count per INSERT when writing a
// snapshot.
const snapshotBatchSize = 200

// VectorSnapshotStore persists whole snapshots of the similarity index.
// There is no incremental diff: a snapshot write replaces the durable
// set with the in-memory set.
type VectorSnapshotStore struct {
	db     database.Database
	mapper VectorEntryMapper
}

// NewVectorSnapshotStore creates a VectorSnapshotStore.
func NewVectorSnapshotStore(db database.Database) VectorSnapshotStore {
	return VectorSnapshotStore{db: db}
}

// ReplaceAll atomically replaces the durable snapshot with entries.
// An empty entries slice clears the snapshot.
func (st VectorSnapshotStore) ReplaceAll(ctx context.Context, entries []embedding.Entry) error {
	err := st.db.Session(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&VectorEntryModel{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		models := make([]VectorEntryModel, len(entries))
		for i, e := range entries {
			models[i] = st.mapper.ToModel(e)
		}
		return tx.CreateInBatches(models, snapshotBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("replace vector snapshot: %w", err)
	}
	return nil
}

// All loads the durable snapshot. An empty store yields an empty slice,
// not an error.
func (st VectorSnapshotStore) All(ctx context.Context) ([]embedding.Entry, error) {
	var models []VectorEntryModel
	result := st.db.Session(ctx).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("load vector snapshot: %w", result.Error)
	}

	entries := make([]embedding.Entry, len(models))
	for i, m := range models {
		entries[i] = st.mapper.ToDomain(m)
	}
	return entries, nil
}
