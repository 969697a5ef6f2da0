package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sinok/quotation-api/internal/domain/entity"
	"github.com/sinok/quotation-api/internal/domain/enum"
	"github.com/sinok/quotation-api/pkg/pagination"
)

// QuotationFilterParams holds filtering, sorting and pagination options
// for listing quotations
type QuotationFilterParams struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.QuotationStatus
	DateFrom   *time.Time
	DateTo     *time.Time
	SortBy     string // created_desc, created_asc, total_desc, total_asc
}

// QuotationRepository defines quotation persistence operations
type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	Update(ctx context.Context, quotation *entity.Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *QuotationFilterParams) ([]entity.Quotation, int64, error)
}

// SequenceRepository hands out monotonically increasing values from
// named counters. Next must be safe under concurrent callers.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
