package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sinok/quotation-api/internal/application/service"
	"github.com/sinok/quotation-api/internal/presentation/http/dto/response"
)

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Get handles the aggregate analytics report
// @Summary Get Analytics
// @Description Aggregate quotation statistics over a period
// @Tags analytics
// @Produce json
// @Param period query string false "month, quarter or year (default month)"
// @Param startDate query string false "Custom range start (YYYY-MM-DD, requires endDate)"
// @Param endDate query string false "Custom range end (YYYY-MM-DD, requires startDate)"
// @Success 200 {object} response.AnalyticsResponse
// @Router /api/analytics [get]
func (h *AnalyticsHandler) Get(c *gin.Context) {
	input := &service.AnalyticsInput{
		Period: c.Query("period"),
	}
	if s := c.Query("startDate"); s != "" {
		input.StartDate = &s
	}
	if e := c.Query("endDate"); e != "" {
		input.EndDate = &e
	}

	analytics, err := h.analyticsService.GetAnalytics(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Analytics(c, analytics)
}
