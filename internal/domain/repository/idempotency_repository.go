package repository

import (
	"context"

	"github.com/sinok/quotation-api/internal/domain/entity"
)

// IdempotencyRepository stores and retrieves cached request responses
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
