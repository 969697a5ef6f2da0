package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sinok/quotation-api/internal/application/service"
	"github.com/sinok/quotation-api/internal/domain/enum"
	"github.com/sinok/quotation-api/internal/presentation/http/dto/request"
	"github.com/sinok/quotation-api/internal/presentation/http/dto/response"
	"github.com/sinok/quotation-api/pkg/pagination"
	"github.com/sinok/quotation-api/pkg/validation"
)

// QuotationHandler handles quotation-related HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
	validator        *validation.Validator
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService, validator *validation.Validator) *QuotationHandler {
	return &QuotationHandler{
		quotationService: quotationService,
		validator:        validator,
	}
}

// List handles listing quotations with filtering, sorting and pagination
// @Summary List Quotations
// @Description Get all quotations with pagination and filtering
// @Tags quotations
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search in number, customer name and email"
// @Param status query string false "Status filter (DRAFT, SENT, ACCEPTED, REJECTED)"
// @Param dateFrom query string false "Created on or after (YYYY-MM-DD)"
// @Param dateTo query string false "Created on or before (YYYY-MM-DD)"
// @Param sortBy query string false "created_desc, created_asc, total_desc or total_asc"
// @Success 200 {object} response.QuotationListResponse
// @Router /api/quotations [get]
func (h *QuotationHandler) List(c *gin.Context) {
	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	input := &service.ListQuotationsInput{
		Pagination: &params,
		Search:     c.Query("search"),
		SortBy:     c.Query("sortBy"),
	}

	if s := c.Query("status"); s != "" {
		status := enum.QuotationStatus(s)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid status. Use DRAFT, SENT, ACCEPTED or REJECTED")
			return
		}
		input.Status = &status
	}
	if d := c.Query("dateFrom"); d != "" {
		input.DateFrom = &d
	}
	if d := c.Query("dateTo"); d != "" {
		input.DateTo = &d
	}

	result, err := h.quotationService.ListQuotations(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.QuotationList(c, result.Quotations, result.Pagination)
}

// Create handles creating a quotation
// @Summary Create Quotation
// @Description Create a new quotation in DRAFT status
// @Tags quotations
// @Accept json
// @Produce json
// @Success 201 {object} response.QuotationCreatedResponse
// @Router /api/quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	var req request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if appErr := req.Validate(h.validator); appErr != nil {
		response.ValidationError(c, appErr)
		return
	}

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), req.ToServiceInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.QuotationCreated(c, quotation)
}

// Get handles fetching a single quotation
// @Summary Get Quotation
// @Description Get a quotation by ID
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.QuotationResponse
// @Router /api/quotations/{id} [get]
func (h *QuotationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Quotation(c, quotation)
}

// Update handles partially updating a quotation
// @Summary Update Quotation
// @Description Apply a partial update to a quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.QuotationUpdatedResponse
// @Router /api/quotations/{id} [put]
func (h *QuotationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req request.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if appErr := req.Validate(h.validator); appErr != nil {
		response.ValidationError(c, appErr)
		return
	}

	quotation, err := h.quotationService.UpdateQuotation(c.Request.Context(), id, req.ToServiceInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.QuotationUpdated(c, quotation)
}

// Delete handles deleting a quotation
// @Summary Delete Quotation
// @Description Delete a quotation by ID
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.MessageResponse
// @Router /api/quotations/{id} [delete]
func (h *QuotationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	if err := h.quotationService.DeleteQuotation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.QuotationDeleted(c)
}
