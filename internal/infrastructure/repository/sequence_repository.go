package repository

import (
	"context"

	"gorm.io/gorm"

	domainRepo "github.com/sinok/quotation-api/internal/domain/repository"
)

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next atomically increments the named counter and returns the new
// value. The single-row UPDATE serializes concurrent callers, so two
// creates can never draw the same quotation number.
func (r *sequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(`
		UPDATE sequences
		SET value = value + 1
		WHERE name = ?
		RETURNING value
	`, name).Scan(&value).Error
	return value, err
}
