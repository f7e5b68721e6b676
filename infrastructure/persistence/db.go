package persistence

import (
	"fmt"

	"github.com/jobpilot/jobpilot/internal/database"
)

// AutoMigrate creates or updates the sessions and vector_entries tables.
func AutoMigrate(db database.Database) error {
	if err := db.GORM().AutoMigrate(&SessionModel{}, &VectorEntryModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
