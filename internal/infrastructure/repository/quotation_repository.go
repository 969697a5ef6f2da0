package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sinok/quotation-api/internal/domain/entity"
	domainRepo "github.com/sinok/quotation-api/internal/domain/repository"
)

type quotationRepository struct {
	db *gorm.DB
}

// NewQuotationRepository creates a new quotation repository
func NewQuotationRepository(db *gorm.DB) domainRepo.QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) Create(ctx context.Context, quotation *entity.Quotation) error {
	return r.db.WithContext(ctx).Create(quotation).Error
}

func (r *quotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).First(&quotation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

func (r *quotationRepository) Update(ctx context.Context, quotation *entity.Quotation) error {
	return r.db.WithContext(ctx).Save(quotation).Error
}

func (r *quotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Quotation{}, "id = ?", id).Error
}

func (r *quotationRepository) List(ctx context.Context, params *domainRepo.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	var quotations []entity.Quotation
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Quotation{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where(
			"number ILIKE ? OR customer->>'name' ILIKE ? OR customer->>'email' ILIKE ?",
			pattern, pattern, pattern)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.DateFrom != nil {
		query = query.Where("created >= ?", *params.DateFrom)
	}
	if params.DateTo != nil {
		query = query.Where("created <= ?", *params.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order(orderClause(params.SortBy)).
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.Limit).
		Find(&quotations).Error

	return quotations, total, err
}

func orderClause(sortBy string) string {
	switch sortBy {
	case "created_asc":
		return "created ASC"
	case "total_desc":
		return "total DESC"
	case "total_asc":
		return "total ASC"
	default: // created_desc
		return "created DESC"
	}
}
