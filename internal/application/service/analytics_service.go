package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sinok/quotation-api/internal/domain/enum"
	"github.com/sinok/quotation-api/internal/domain/repository"
	"github.com/sinok/quotation-api/pkg/apperror"
)

// AnalyticsService computes aggregate quotation statistics over a period
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
}

// AnalyticsInput selects the reporting window: either a named period
// (month, quarter, year) relative to now, or an explicit date range.
type AnalyticsInput struct {
	Period    string
	StartDate *string
	EndDate   *string
}

// QuotationStats summarizes counts and accepted-value sums for the period
type QuotationStats struct {
	Total             int64   `json:"total"`
	Accepted          int64   `json:"accepted"`
	AcceptedValue     float64 `json:"acceptedValue"`
	AcceptedAdvance   float64 `json:"acceptedAdvance"`
	AcceptedRemaining float64 `json:"acceptedRemaining"`
	AvgAcceptedValue  float64 `json:"avgAcceptedValue"`
}

// RecentQuotation is a compact listing entry for recent activity
type RecentQuotation struct {
	ID           string               `json:"id"`
	Number       string               `json:"number"`
	CustomerName string               `json:"customerName"`
	Total        float64              `json:"total"`
	Status       enum.QuotationStatus `json:"status"`
	Created      time.Time            `json:"created"`
}

// FinancialSummary reports accepted-quotation money flows for the period
type FinancialSummary struct {
	TotalValue         float64 `json:"totalValue"`
	AdvanceReceived    float64 `json:"advanceReceived"`
	PendingAmount      float64 `json:"pendingAmount"`
	AvgQuotationValue  string  `json:"avgQuotationValue"`
	AcceptedQuotations int64   `json:"acceptedQuotations"`
	TotalQuotations    int64   `json:"totalQuotations"`
}

// PeriodInfo echoes the resolved reporting window
type PeriodInfo struct {
	Type      string    `json:"type"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Analytics is the full aggregate report
type Analytics struct {
	Quotations       QuotationStats                     `json:"quotations"`
	RecentQuotations []RecentQuotation                  `json:"recentQuotations"`
	StatusBreakdown  []repository.StatusBreakdownResult `json:"statusBreakdown"`
	Financial        FinancialSummary                   `json:"financial"`
	Period           PeriodInfo                         `json:"period"`
}

// GetAnalytics assembles the aggregate report for the requested window
func (s *AnalyticsService) GetAnalytics(ctx context.Context, input *AnalyticsInput) (*Analytics, error) {
	from, to, periodType, err := s.resolvePeriod(input)
	if err != nil {
		return nil, err
	}

	accepted, err := s.analyticsRepo.GetAcceptedStats(ctx, from, to)
	if err != nil {
		return nil, err
	}

	recent, err := s.analyticsRepo.GetRecentQuotations(ctx, from, to, 5)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.analyticsRepo.GetStatusBreakdown(ctx, from, to)
	if err != nil {
		return nil, err
	}

	totalCount, err := s.analyticsRepo.CountQuotations(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var avg float64
	if accepted.Count > 0 {
		avg = accepted.SumTotal / float64(accepted.Count)
	}

	recentOut := make([]RecentQuotation, 0, len(recent))
	for _, q := range recent {
		customerName := q.Customer.Name
		if customerName == "" {
			customerName = "Unknown"
		}
		recentOut = append(recentOut, RecentQuotation{
			ID:           q.ID.String(),
			Number:       q.Number,
			CustomerName: customerName,
			Total:        q.Total,
			Status:       q.Status,
			Created:      q.Created,
		})
	}

	if breakdown == nil {
		breakdown = []repository.StatusBreakdownResult{}
	}

	return &Analytics{
		Quotations: QuotationStats{
			Total:             totalCount,
			Accepted:          accepted.Count,
			AcceptedValue:     accepted.SumTotal,
			AcceptedAdvance:   accepted.SumAdvance,
			AcceptedRemaining: accepted.SumRemaining,
			AvgAcceptedValue:  avg,
		},
		RecentQuotations: recentOut,
		StatusBreakdown:  breakdown,
		Financial: FinancialSummary{
			TotalValue:         accepted.SumTotal,
			AdvanceReceived:    accepted.SumAdvance,
			PendingAmount:      accepted.SumRemaining,
			AvgQuotationValue:  fmt.Sprintf("%.2f", avg),
			AcceptedQuotations: accepted.Count,
			TotalQuotations:    totalCount,
		},
		Period: PeriodInfo{
			Type:      periodType,
			StartDate: from,
			EndDate:   to,
		},
	}, nil
}

func (s *AnalyticsService) resolvePeriod(input *AnalyticsInput) (from, to time.Time, periodType string, err error) {
	if input.StartDate != nil && input.EndDate != nil {
		from, err = parseDate(*input.StartDate)
		if err != nil {
			return from, to, "", apperror.NewBadRequestError("Invalid startDate. Use YYYY-MM-DD")
		}
		to, err = parseDate(*input.EndDate)
		if err != nil {
			return from, to, "", apperror.NewBadRequestError("Invalid endDate. Use YYYY-MM-DD")
		}
		return from, to, "custom", nil
	}

	now := s.now()
	periodType = input.Period
	if periodType == "" {
		periodType = "month"
	}

	switch periodType {
	case "month":
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case "quarter":
		quarterStart := ((int(now.Month())-1)/3)*3 + 1
		from = time.Date(now.Year(), time.Month(quarterStart), 1, 0, 0, 0, 0, now.Location())
	case "year":
		from = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return from, to, "", apperror.NewBadRequestError("Invalid period. Use month, quarter or year")
	}

	return from, now, periodType, nil
}
