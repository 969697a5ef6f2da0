package response

import (
	"github.com/gin-gonic/gin"

	"github.com/sinok/quotation-api/internal/application/service"
	"github.com/sinok/quotation-api/internal/domain/entity"
	"github.com/sinok/quotation-api/pkg/apperror"
	"github.com/sinok/quotation-api/pkg/pagination"
)

// QuotationListResponse is the list endpoint body: a page of quotations
// with flattened pagination metadata
type QuotationListResponse struct {
	Quotations  []entity.Quotation `json:"quotations"`
	Total       int64              `json:"total"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
	HasNextPage bool               `json:"hasNextPage"`
	HasPrevPage bool               `json:"hasPrevPage"`
}

// QuotationCreatedResponse is the create endpoint body
type QuotationCreatedResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    QuotationCreatedData `json:"data"`
}

type QuotationCreatedData struct {
	Quotation *entity.Quotation `json:"quotation"`
}

// QuotationResponse is the single-fetch endpoint body
type QuotationResponse struct {
	Success   bool              `json:"success"`
	Quotation *entity.Quotation `json:"quotation"`
}

// QuotationUpdatedResponse is the update endpoint body
type QuotationUpdatedResponse struct {
	Success   bool              `json:"success"`
	Quotation *entity.Quotation `json:"quotation"`
	Message   string            `json:"message"`
}

// MessageResponse is the delete endpoint body
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AnalyticsResponse wraps the aggregate report
type AnalyticsResponse struct {
	Success   bool               `json:"success"`
	Analytics *service.Analytics `json:"analytics"`
}

// ErrorResponse is the body for 4xx responses. Errors is only present
// on validation failures and carries every field that failed.
type ErrorResponse struct {
	Message string                `json:"message"`
	Errors  []apperror.FieldError `json:"errors,omitempty"`
}

// InternalErrorResponse is the body for unclassified 500s
type InternalErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// QuotationList sends the list page with flattened pagination fields
func QuotationList(c *gin.Context, quotations []entity.Quotation, p *pagination.Pagination) {
	if quotations == nil {
		quotations = []entity.Quotation{}
	}
	c.JSON(200, QuotationListResponse{
		Quotations:  quotations,
		Total:       p.Total,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
		HasNextPage: p.HasNextPage,
		HasPrevPage: p.HasPrevPage,
	})
}

// QuotationCreated sends a 201 with the new quotation
func QuotationCreated(c *gin.Context, quotation *entity.Quotation) {
	c.JSON(201, QuotationCreatedResponse{
		Success: true,
		Message: "Quotation created successfully",
		Data:    QuotationCreatedData{Quotation: quotation},
	})
}

// Quotation sends a single quotation
func Quotation(c *gin.Context, quotation *entity.Quotation) {
	c.JSON(200, QuotationResponse{Success: true, Quotation: quotation})
}

// QuotationUpdated sends the merged quotation after an update
func QuotationUpdated(c *gin.Context, quotation *entity.Quotation) {
	c.JSON(200, QuotationUpdatedResponse{
		Success:   true,
		Quotation: quotation,
		Message:   "Quotation updated successfully",
	})
}

// QuotationDeleted confirms a delete
func QuotationDeleted(c *gin.Context) {
	c.JSON(200, MessageResponse{Success: true, Message: "Quotation deleted successfully"})
}

// Analytics sends the aggregate report
func Analytics(c *gin.Context, analytics *service.Analytics) {
	c.JSON(200, AnalyticsResponse{Success: true, Analytics: analytics})
}

// Error maps an application error onto the wire: 4xx carry the message
// (and field errors when present), anything else becomes a generic 500
// with the cause attached.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	if appErr.Code >= 500 {
		InternalError(c, err)
		return
	}
	c.JSON(appErr.Code, ErrorResponse{
		Message: appErr.Message,
		Errors:  appErr.Errors,
	})
}

// ValidationError sends a 400 carrying every field failure
func ValidationError(c *gin.Context, appErr *apperror.AppError) {
	c.JSON(appErr.Code, ErrorResponse{
		Message: appErr.Message,
		Errors:  appErr.Errors,
	})
}

// BadRequest sends a 400 with a plain message
func BadRequest(c *gin.Context, message string) {
	c.JSON(400, ErrorResponse{Message: message})
}

// InternalError sends a 500 with a best-effort description of the cause
func InternalError(c *gin.Context, err error) {
	c.Error(err)
	c.JSON(500, InternalErrorResponse{
		Message: "Internal server error",
		Error:   err.Error(),
	})
}
