package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase_SQLiteMemory(t *testing.T) {
	db, err := NewDatabase(context.Background(), "sqlite:///:memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.True(t, db.IsSQLite())
	assert.False(t, db.IsPostgres())
	assert.NotNil(t, db.GORM())
}

func TestNewDatabase_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDatabase(context.Background(), "sqlite:///"+path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.True(t, db.IsSQLite())
	assert.FileExists(t, path)
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	_, err := NewDatabase(context.Background(), "mysql://localhost/db")
	assert.ErrorIs(t, err, ErrUnsupportedDriver)

	_, err = NewDatabase(context.Background(), "not a url")
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSession_ExecutesQueries(t *testing.T) {
	db, err := NewDatabase(context.Background(), "sqlite:///:memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var one int
	require.NoError(t, db.Session(context.Background()).Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}
