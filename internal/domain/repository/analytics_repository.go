package repository

import (
	"context"
	"time"

	"github.com/sinok/quotation-api/internal/domain/entity"
)

// AcceptedStatsResult aggregates the financial sums of ACCEPTED quotations
type AcceptedStatsResult struct {
	Count        int64   `json:"count"`
	SumTotal     float64 `json:"sum_total"`
	SumSubtotal  float64 `json:"sum_subtotal"`
	SumAdvance   float64 `json:"sum_advance"`
	SumRemaining float64 `json:"sum_remaining"`
}

// StatusBreakdownResult is the count and value of quotations in one status
type StatusBreakdownResult struct {
	Status     string  `json:"status"`
	Count      int64   `json:"count"`
	TotalValue float64 `json:"totalValue"`
}

// AnalyticsRepository defines aggregate queries over quotations
type AnalyticsRepository interface {
	GetAcceptedStats(ctx context.Context, from, to time.Time) (*AcceptedStatsResult, error)
	GetStatusBreakdown(ctx context.Context, from, to time.Time) ([]StatusBreakdownResult, error)
	GetRecentQuotations(ctx context.Context, from, to time.Time, limit int) ([]entity.Quotation, error)
	CountQuotations(ctx context.Context, from, to time.Time) (int64, error)
}
