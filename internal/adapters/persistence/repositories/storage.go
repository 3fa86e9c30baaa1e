package repositories

import (
	"context"
	"errors"

	"agrihero-admin/internal/core/domain"

	"gorm.io/gorm"
)

// storage implements Storage on top of GORM/MySQL
type storage struct {
	db *gorm.DB
}

// New creates a new database-backed storage
func New(db *gorm.DB) Storage {
	return &storage{db: db}
}

// Transaction runs fn inside a single database transaction
func (s *storage) Transaction(ctx context.Context, fn func(Storage) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&storage{db: tx})
	})
}

// translateErr maps gorm errors onto domain sentinels
func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateEntry
	}
	return err
}
