package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sinok/quotation-api/internal/domain/entity"
	"github.com/sinok/quotation-api/internal/domain/enum"
	domainRepo "github.com/sinok/quotation-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetAcceptedStats(ctx context.Context, from, to time.Time) (*domainRepo.AcceptedStatsResult, error) {
	var result domainRepo.AcceptedStatsResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) as count,
			COALESCE(SUM(total), 0) as sum_total,
			COALESCE(SUM(subtotal), 0) as sum_subtotal,
			COALESCE(SUM(advance), 0) as sum_advance,
			COALESCE(SUM(remaining), 0) as sum_remaining
		FROM quotations
		WHERE status = ? AND created >= ? AND created <= ?
	`, enum.QuotationStatusAccepted, from, to).Scan(&result).Error

	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *analyticsRepository) GetStatusBreakdown(ctx context.Context, from, to time.Time) ([]domainRepo.StatusBreakdownResult, error) {
	var results []domainRepo.StatusBreakdownResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) as count,
			COALESCE(SUM(total), 0) as total_value
		FROM quotations
		WHERE created >= ? AND created <= ?
		GROUP BY status
		ORDER BY count DESC
	`, from, to).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) GetRecentQuotations(ctx context.Context, from, to time.Time, limit int) ([]entity.Quotation, error) {
	var quotations []entity.Quotation
	err := r.db.WithContext(ctx).
		Where("created >= ? AND created <= ?", from, to).
		Order("created DESC").
		Limit(limit).
		Find(&quotations).Error
	return quotations, err
}

func (r *analyticsRepository) CountQuotations(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Quotation{}).
		Where("created >= ? AND created <= ?", from, to).
		Count(&count).Error
	return count, err
}
