package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrNotFound indicates no session exists for the given user id.
var ErrNotFound = errors.New("session not found")

// Store persists whole session records keyed by user id. Partial-update
// semantics live above the store: callers read, merge, and write back
// whole records.
type Store interface {
	// Put creates or replaces the record for s.UserID.
	Put(ctx context.Context, s Session) error

	// Get loads the record for userID, or ErrNotFound.
	Get(ctx context.Context, userID string) (Session, error)

	// Delete removes the record for userID. Deleting an absent record
	// is a no-op, not an error.
	Delete(ctx context.Context, userID string) error

	// All returns every session record. Diagnostic and bulk use only.
	All(ctx context.Context) ([]Session, error)
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewUserID generates a session key of the form user_<millis>_<alnum>.
// The timestamp keeps ids roughly sortable by creation time; the random
// suffix avoids collisions for ids minted in the same millisecond.
func NewUserID() string {
	suffix := make([]byte, 8)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("user_%d_%s", time.Now().UnixMilli(), suffix)
}
