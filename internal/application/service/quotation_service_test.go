package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sinok/quotation-api/internal/domain/entity"
	"github.com/sinok/quotation-api/internal/domain/enum"
	"github.com/sinok/quotation-api/internal/domain/repository"
	"github.com/sinok/quotation-api/pkg/apperror"
	"github.com/sinok/quotation-api/pkg/optional"
	"github.com/sinok/quotation-api/pkg/pagination"
)

type mockQuotationRepo struct {
	store     map[uuid.UUID]entity.Quotation
	createErr error
	updateErr error
}

func newMockQuotationRepo() *mockQuotationRepo {
	return &mockQuotationRepo{store: make(map[uuid.UUID]entity.Quotation)}
}

func (m *mockQuotationRepo) Create(ctx context.Context, q *entity.Quotation) error {
	if m.createErr != nil {
		return m.createErr
	}
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	q.Created = time.Now()
	q.Updated = q.Created
	m.store[q.ID] = *q
	return nil
}

func (m *mockQuotationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	q, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (m *mockQuotationRepo) Update(ctx context.Context, q *entity.Quotation) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	q.Updated = time.Now()
	m.store[q.ID] = *q
	return nil
}

func (m *mockQuotationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.store, id)
	return nil
}

func (m *mockQuotationRepo) List(ctx context.Context, params *repository.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	out := make([]entity.Quotation, 0, len(m.store))
	for _, q := range m.store {
		out = append(out, q)
	}
	return out, int64(len(out)), nil
}

type mockSequenceRepo struct {
	value int64
	err   error
}

func (m *mockSequenceRepo) Next(ctx context.Context, name string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.value++
	return m.value, nil
}

func validCreateInput() *CreateQuotationInput {
	return &CreateQuotationInput{
		Customer: ContactInput{
			Name:  "Globex Corp",
			Email: "buyer@globex.test",
			Phone: "+14155550123",
			Address: AddressInput{
				Street: "12 Harbor Road", City: "Shanghai", State: "Shanghai",
				Postal: "200000", Country: "China",
			},
		},
		Vendor: ContactInput{
			Name:  "Acme Supplies",
			Email: "sales@acme.test",
			Phone: "+14155550100",
			Address: AddressInput{
				Street: "1 Factory Lane", City: "Dongguan", State: "Guangdong",
				Postal: "523000", Country: "China",
			},
		},
		Shipment: ShipmentInput{
			Address: AddressInput{
				Street: "12 Harbor Road", City: "Shanghai", State: "Shanghai",
				Postal: "200000", Country: "China",
			},
			Method: "Sea Freight",
			Cost:   250,
			ETA:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		},
		Items: []ItemInput{
			{Name: "Widget", Quantity: 3, SellingPrice: 99.99, CostPrice: 60},
			{Name: "Gadget", Quantity: 4, SellingPrice: 39.99, CostPrice: 25},
		},
		Discount: 30,
		Tax:      5,
	}
}

func TestCreateQuotation(t *testing.T) {
	t.Run("assigns a sequential number and derives all financial fields", func(t *testing.T) {
		repo := newMockQuotationRepo()
		svc := NewQuotationService(repo, &mockSequenceRepo{})

		q, err := svc.CreateQuotation(context.Background(), validCreateInput())
		require.NoError(t, err)

		assert.Equal(t, "QT-0001", q.Number)
		assert.Equal(t, enum.QuotationStatusDraft, q.Status)
		assert.Equal(t, 459.93, q.Subtotal)
		assert.Equal(t, 434.93, q.Total)
		assert.Equal(t, 0.0, q.Advance)
		assert.Equal(t, 434.93, q.Remaining)
		assert.Len(t, repo.store, 1)
	})

	t.Run("payment terms split the total at creation", func(t *testing.T) {
		repo := newMockQuotationRepo()
		svc := NewQuotationService(repo, &mockSequenceRepo{})

		input := validCreateInput()
		terms := "30"
		input.PaymentTerms = &terms

		q, err := svc.CreateQuotation(context.Background(), input)
		require.NoError(t, err)

		assert.Equal(t, 130.48, q.Advance)
		assert.Equal(t, 304.45, q.Remaining)
	})

	t.Run("items without a vendor inherit the quotation vendor", func(t *testing.T) {
		repo := newMockQuotationRepo()
		svc := NewQuotationService(repo, &mockSequenceRepo{})

		q, err := svc.CreateQuotation(context.Background(), validCreateInput())
		require.NoError(t, err)

		for _, item := range q.Items {
			assert.Equal(t, "Acme Supplies", item.Vendor.Name)
		}
	})

	t.Run("numbers grow past four digits without truncation", func(t *testing.T) {
		repo := newMockQuotationRepo()
		svc := NewQuotationService(repo, &mockSequenceRepo{value: 12344})

		q, err := svc.CreateQuotation(context.Background(), validCreateInput())
		require.NoError(t, err)

		assert.Equal(t, "QT-12345", q.Number)
	})

	t.Run("duplicate key maps to a conflict error", func(t *testing.T) {
		repo := newMockQuotationRepo()
		repo.createErr = gorm.ErrDuplicatedKey
		svc := NewQuotationService(repo, &mockSequenceRepo{})

		_, err := svc.CreateQuotation(context.Background(), validCreateInput())
		require.Error(t, err)

		appErr := apperror.GetAppError(err)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("sequence failure surfaces and persists nothing", func(t *testing.T) {
		repo := newMockQuotationRepo()
		svc := NewQuotationService(repo, &mockSequenceRepo{err: fmt.Errorf("connection refused")})

		_, err := svc.CreateQuotation(context.Background(), validCreateInput())
		require.Error(t, err)
		assert.Empty(t, repo.store)
	})
}

func TestGetQuotation(t *testing.T) {
	repo := newMockQuotationRepo()
	svc := NewQuotationService(repo, &mockSequenceRepo{})

	created, err := svc.CreateQuotation(context.Background(), validCreateInput())
	require.NoError(t, err)

	t.Run("returns the stored quotation", func(t *testing.T) {
		q, err := svc.GetQuotation(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Number, q.Number)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		_, err := svc.GetQuotation(context.Background(), uuid.New())
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestUpdateQuotation(t *testing.T) {
	t.Run("persists the merged record", func(t *testing.T) {
		repo := newMockQuotationRepo()
		svc := NewQuotationService(repo, &mockSequenceRepo{})

		created, err := svc.CreateQuotation(context.Background(), validCreateInput())
		require.NoError(t, err)

		updated, err := svc.UpdateQuotation(context.Background(), created.ID, &UpdateQuotationInput{
			Status:  optional.Of(enum.QuotationStatusSent),
			Remarks: optional.Of("Follow up next week"),
		})
		require.NoError(t, err)

		assert.Equal(t, enum.QuotationStatusSent, updated.Status)
		require.NotNil(t, updated.Remarks)
		assert.Equal(t, "Follow up next week", *updated.Remarks)

		stored, err := svc.GetQuotation(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, enum.QuotationStatusSent, stored.Status)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		repo := newMockQuotationRepo()
		svc := NewQuotationService(repo, &mockSequenceRepo{})

		_, err := svc.UpdateQuotation(context.Background(), uuid.New(), &UpdateQuotationInput{})
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestDeleteQuotation(t *testing.T) {
	repo := newMockQuotationRepo()
	svc := NewQuotationService(repo, &mockSequenceRepo{})

	created, err := svc.CreateQuotation(context.Background(), validCreateInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQuotation(context.Background(), created.ID))
	assert.Empty(t, repo.store)

	err = svc.DeleteQuotation(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListQuotations(t *testing.T) {
	repo := newMockQuotationRepo()
	svc := NewQuotationService(repo, &mockSequenceRepo{})

	for i := 0; i < 3; i++ {
		_, err := svc.CreateQuotation(context.Background(), validCreateInput())
		require.NoError(t, err)
	}

	t.Run("returns a page with derived metadata", func(t *testing.T) {
		result, err := svc.ListQuotations(context.Background(), &ListQuotationsInput{
			Pagination: &pagination.Params{Page: 1, Limit: 2},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(3), result.Pagination.Total)
		assert.Equal(t, 2, result.Pagination.TotalPages)
		assert.True(t, result.Pagination.HasNextPage)
		assert.False(t, result.Pagination.HasPrevPage)
	})

	t.Run("rejects malformed date filters", func(t *testing.T) {
		bad := "15-09-2026"
		_, err := svc.ListQuotations(context.Background(), &ListQuotationsInput{
			Pagination: pagination.DefaultParams(),
			DateFrom:   &bad,
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})
}
