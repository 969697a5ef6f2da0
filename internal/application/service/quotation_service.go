package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sinok/quotation-api/internal/domain/entity"
	"github.com/sinok/quotation-api/internal/domain/enum"
	"github.com/sinok/quotation-api/internal/domain/repository"
	"github.com/sinok/quotation-api/pkg/apperror"
	"github.com/sinok/quotation-api/pkg/money"
	"github.com/sinok/quotation-api/pkg/pagination"
)

// QuotationService handles quotation-related operations
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	sequenceRepo  repository.SequenceRepository
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	sequenceRepo repository.SequenceRepository,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		sequenceRepo:  sequenceRepo,
	}
}

// CreateQuotation creates a new quotation. The number is drawn from an
// atomic sequence and all financial fields are derived server-side; new
// quotations always start in DRAFT.
func (s *QuotationService) CreateQuotation(ctx context.Context, input *CreateQuotationInput) (*entity.Quotation, error) {
	next, err := s.sequenceRepo.Next(ctx, entity.SequenceQuotationNumber)
	if err != nil {
		return nil, err
	}

	items := buildItems(input.Items, &input.Vendor)

	paymentTerms := ""
	if input.PaymentTerms != nil {
		paymentTerms = *input.PaymentTerms
	}
	discount := money.Normalize(input.Discount)
	tax := money.Normalize(input.Tax)
	totals := ComputeTotals(items, discount, tax, paymentTerms, 0)

	quotation := &entity.Quotation{
		Number:       fmt.Sprintf("QT-%04d", next),
		Customer:     contactFromInput(input.Customer),
		Shipment:     shipmentFromInput(input.Shipment),
		Items:        items,
		ValidUntil:   input.ValidUntil,
		PaymentTerms: input.PaymentTerms,
		Discount:     discount,
		Tax:          tax,
		Subtotal:     totals.Subtotal,
		Total:        totals.Total,
		Advance:      totals.Advance,
		Remaining:    totals.Remaining,
		Remarks:      input.Remarks,
		Status:       enum.QuotationStatusDraft,
	}

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Duplicate entry found")
		}
		return nil, err
	}

	return quotation, nil
}

// GetQuotation retrieves a quotation by ID
func (s *QuotationService) GetQuotation(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// ListQuotationsInput represents the input for listing quotations
type ListQuotationsInput struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.QuotationStatus
	DateFrom   *string
	DateTo     *string
	SortBy     string
}

// ListQuotationsResult bundles a page of quotations with its pagination metadata
type ListQuotationsResult struct {
	Quotations []entity.Quotation
	Pagination *pagination.Pagination
}

// ListQuotations lists quotations with filtering, sorting and pagination
func (s *QuotationService) ListQuotations(ctx context.Context, input *ListQuotationsInput) (*ListQuotationsResult, error) {
	input.Pagination.Validate()

	params := &repository.QuotationFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		SortBy:     input.SortBy,
	}

	if input.DateFrom != nil {
		from, err := parseDate(*input.DateFrom)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid dateFrom. Use YYYY-MM-DD")
		}
		params.DateFrom = &from
	}
	if input.DateTo != nil {
		to, err := parseDate(*input.DateTo)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid dateTo. Use YYYY-MM-DD")
		}
		// Inclusive through the end of the day
		end := to.AddDate(0, 0, 1).Add(-time.Millisecond)
		params.DateTo = &end
	}

	quotations, total, err := s.quotationRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &ListQuotationsResult{
		Quotations: quotations,
		Pagination: pagination.New(input.Pagination.Page, input.Pagination.Limit, total),
	}, nil
}

// UpdateQuotation applies a partial patch to an existing quotation and
// persists the merged replacement record
func (s *QuotationService) UpdateQuotation(ctx context.Context, id uuid.UUID, patch *UpdateQuotationInput) (*entity.Quotation, error) {
	existing, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	updated := resolveUpdate(existing, patch)

	if err := s.quotationRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Duplicate entry found")
		}
		return nil, err
	}

	return &updated, nil
}

// DeleteQuotation deletes a quotation
func (s *QuotationService) DeleteQuotation(ctx context.Context, id uuid.UUID) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}

	return s.quotationRepo.Delete(ctx, id)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
