package request

import (
	"fmt"
	"time"

	"github.com/sinok/quotation-api/internal/application/service"
	"github.com/sinok/quotation-api/internal/domain/enum"
	"github.com/sinok/quotation-api/pkg/apperror"
	"github.com/sinok/quotation-api/pkg/money"
	"github.com/sinok/quotation-api/pkg/optional"
	"github.com/sinok/quotation-api/pkg/validation"
)

// AddressRequest represents a complete postal address in a request body
type AddressRequest struct {
	Street  string `json:"street" validate:"required,min=5,max=200"`
	City    string `json:"city" validate:"required,min=2,max=50,namechars"`
	State   string `json:"state" validate:"required,min=2,max=50,namechars"`
	Postal  string `json:"postal" validate:"required,postalcode"`
	Country string `json:"country" validate:"required,min=2,max=50,namechars"`
}

// ContactRequest represents a complete customer or vendor record
type ContactRequest struct {
	Name          string         `json:"name" validate:"required,min=2,max=100,namechars"`
	ContactPerson string         `json:"contactPerson" validate:"omitempty,min=2,max=100,namechars"`
	Email         string         `json:"email" validate:"required,email"`
	Phone         string         `json:"phone" validate:"required,intlphone"`
	Whatsapp      string         `json:"whatsapp" validate:"omitempty,intlphone"`
	Wechat        string         `json:"wechat" validate:"omitempty,wechatid"`
	Address       AddressRequest `json:"address" validate:"required"`
}

// ShipmentRequest represents shipment details on create
type ShipmentRequest struct {
	Address     AddressRequest `json:"address" validate:"required"`
	Method      string         `json:"method" validate:"required,min=2,max=50"`
	Cost        money.Amount   `json:"cost" validate:"gte=0,decimal2"`
	Tracking    string         `json:"tracking" validate:"omitempty,max=100"`
	Status      string         `json:"status" validate:"omitempty,oneof=PROCESSING IN_TRANSIT DELIVERED CANCELLED"`
	ETA         string         `json:"eta" validate:"required,datetime=2006-01-02"`
	DeliveredAt string         `json:"deliveredAt" validate:"required,datetime=2006-01-02"`
	Terms       string         `json:"terms" validate:"omitempty,max=500"`
	Notes       string         `json:"notes" validate:"omitempty,max=1000"`
}

// ItemRequest represents a line item in the request body. Vendor is
// optional on create (the quotation-level vendor is used) but required
// on update.
type ItemRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	ProductNumber string          `json:"productNumber" validate:"omitempty,max=50"`
	Description   string          `json:"description" validate:"omitempty,max=1000"`
	Category      string          `json:"category" validate:"omitempty,max=100"`
	Unit          string          `json:"unit" validate:"omitempty,max=20"`
	Quantity      money.Amount    `json:"quantity" validate:"required,gt=0,decimal2"`
	CostPrice     money.Amount    `json:"costPrice" validate:"gte=0,decimal2"`
	SellingPrice  money.Amount    `json:"sellingPrice" validate:"gte=0,decimal2"`
	Vendor        *ContactRequest `json:"vendor" validate:"omitempty"`
}

// CreateQuotationRequest represents the create quotation request body
type CreateQuotationRequest struct {
	Customer     ContactRequest  `json:"customer" validate:"required"`
	Vendor       ContactRequest  `json:"vendor" validate:"required"`
	Shipment     ShipmentRequest `json:"shipment" validate:"required"`
	Items        []ItemRequest   `json:"items" validate:"required,min=1,dive"`
	ValidUntil   *string         `json:"validUntil" validate:"omitempty,datetime=2006-01-02"`
	PaymentTerms *string         `json:"paymentTerms" validate:"omitempty,max=10"`
	Discount     money.Amount    `json:"discount" validate:"gte=0,decimal2"`
	Tax          money.Amount    `json:"tax" validate:"gte=0,decimal2"`
	Remarks      *string         `json:"remarks" validate:"omitempty,max=2000"`
}

// Validate checks the payload and reports every field failure
func (r *CreateQuotationRequest) Validate(v *validation.Validator) *apperror.AppError {
	return v.Struct(r)
}

// ToServiceInput converts the request into a service-layer create input
func (r *CreateQuotationRequest) ToServiceInput() *service.CreateQuotationInput {
	items := make([]service.ItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, itemInput(item))
	}

	return &service.CreateQuotationInput{
		Customer:     contactInput(r.Customer),
		Vendor:       contactInput(r.Vendor),
		Shipment:     shipmentInput(r.Shipment),
		Items:        items,
		ValidUntil:   parseDatePtr(r.ValidUntil),
		PaymentTerms: r.PaymentTerms,
		Discount:     r.Discount.Float64(),
		Tax:          r.Tax.Float64(),
		Remarks:      r.Remarks,
	}
}

// AddressPatchRequest overrides individual address fields. Supplied
// values are format-checked; empty fields keep the stored value.
type AddressPatchRequest struct {
	Street  string `json:"street" validate:"omitempty,min=5,max=200"`
	City    string `json:"city" validate:"omitempty,min=2,max=50,namechars"`
	State   string `json:"state" validate:"omitempty,min=2,max=50,namechars"`
	Postal  string `json:"postal" validate:"omitempty,postalcode"`
	Country string `json:"country" validate:"omitempty,min=2,max=50,namechars"`
}

// ContactPatchRequest overrides individual contact fields
type ContactPatchRequest struct {
	Name          string               `json:"name" validate:"omitempty,min=2,max=100,namechars"`
	ContactPerson string               `json:"contactPerson" validate:"omitempty,min=2,max=100,namechars"`
	Email         string               `json:"email" validate:"omitempty,email"`
	Phone         string               `json:"phone" validate:"omitempty,intlphone"`
	Whatsapp      string               `json:"whatsapp" validate:"omitempty,intlphone"`
	Wechat        string               `json:"wechat" validate:"omitempty,wechatid"`
	Address       *AddressPatchRequest `json:"address"`
}

// ShipmentPatchRequest overrides individual shipment fields
type ShipmentPatchRequest struct {
	Address     *AddressPatchRequest `json:"address"`
	Method      string               `json:"method" validate:"omitempty,min=2,max=50"`
	Cost        *money.Amount        `json:"cost" validate:"omitempty,gte=0,decimal2"`
	Tracking    string               `json:"tracking" validate:"omitempty,max=100"`
	Status      string               `json:"status" validate:"omitempty,oneof=PROCESSING IN_TRANSIT DELIVERED CANCELLED"`
	ETA         *string              `json:"eta" validate:"omitempty,datetime=2006-01-02"`
	DeliveredAt *string              `json:"deliveredAt" validate:"omitempty,datetime=2006-01-02"`
	Terms       string               `json:"terms" validate:"omitempty,max=500"`
	Notes       string               `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateQuotationRequest represents the partial update request body.
// Top-level scalars distinguish absent from explicit null; nested
// groups merge field by field when supplied.
type UpdateQuotationRequest struct {
	Customer     *ContactPatchRequest         `json:"customer"`
	Shipment     *ShipmentPatchRequest        `json:"shipment"`
	Items        *[]ItemRequest               `json:"items" validate:"omitempty,min=1,dive"`
	ValidUntil   optional.Field[string]       `json:"validUntil" validate:"-"`
	PaymentTerms optional.Field[string]       `json:"paymentTerms" validate:"-"`
	Discount     optional.Field[money.Amount] `json:"discount" validate:"-"`
	Tax          optional.Field[money.Amount] `json:"tax" validate:"-"`
	Remarks      optional.Field[string]       `json:"remarks" validate:"-"`
	Status       optional.Field[string]       `json:"status" validate:"-"`
}

// Validate checks the payload. Tri-state scalars cannot carry struct
// tags, so their rules are applied by hand and merged with the tag
// failures so the caller still sees every problem at once.
func (r *UpdateQuotationRequest) Validate(v *validation.Validator) *apperror.AppError {
	var fieldErrors []apperror.FieldError

	if appErr := v.Struct(r); appErr != nil {
		if len(appErr.Errors) == 0 {
			return appErr
		}
		fieldErrors = append(fieldErrors, appErr.Errors...)
	}

	if r.Items != nil {
		for i, item := range *r.Items {
			if item.Vendor == nil {
				fieldErrors = append(fieldErrors, apperror.FieldError{
					Field:   fmt.Sprintf("items[%d].vendor", i),
					Message: "vendor is required",
				})
			}
		}
	}

	if s, ok := r.ValidUntil.Value(); ok {
		if _, err := time.Parse("2006-01-02", s); err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   "validUntil",
				Message: "validUntil must be a date in YYYY-MM-DD format",
			})
		}
	}
	if s, ok := r.PaymentTerms.Value(); ok && len(s) > 10 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "paymentTerms",
			Message: "paymentTerms must be less than 10 characters",
		})
	}
	if a, ok := r.Discount.Value(); ok {
		fieldErrors = append(fieldErrors, amountErrors("discount", a)...)
	}
	if a, ok := r.Tax.Value(); ok {
		fieldErrors = append(fieldErrors, amountErrors("tax", a)...)
	}
	if s, ok := r.Status.Value(); ok {
		if !enum.QuotationStatus(s).IsValid() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   "status",
				Message: "status must be one of: DRAFT SENT ACCEPTED REJECTED",
			})
		}
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func amountErrors(field string, a money.Amount) []apperror.FieldError {
	var errs []apperror.FieldError
	if a.Float64() < 0 {
		errs = append(errs, apperror.FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be 0 or greater", field),
		})
	}
	if !money.HasMaxTwoDecimals(a.Float64()) {
		errs = append(errs, apperror.FieldError{
			Field:   field,
			Message: "maximum 2 decimal places allowed (e.g., 10.50)",
		})
	}
	return errs
}

// ToServiceInput converts the request into a service-layer patch
func (r *UpdateQuotationRequest) ToServiceInput() *service.UpdateQuotationInput {
	patch := &service.UpdateQuotationInput{
		ValidUntil:   mapField(r.ValidUntil, mustParseDate),
		PaymentTerms: r.PaymentTerms,
		Discount:     mapField(r.Discount, money.Amount.Float64),
		Tax:          mapField(r.Tax, money.Amount.Float64),
		Remarks:      r.Remarks,
		Status: mapField(r.Status, func(s string) enum.QuotationStatus {
			return enum.QuotationStatus(s)
		}),
	}

	if r.Customer != nil {
		patch.Customer = contactPatch(r.Customer)
	}
	if r.Shipment != nil {
		patch.Shipment = shipmentPatch(r.Shipment)
	}
	if r.Items != nil {
		patch.HasItems = true
		patch.Items = make([]service.ItemInput, 0, len(*r.Items))
		for _, item := range *r.Items {
			patch.Items = append(patch.Items, itemInput(item))
		}
	}

	return patch
}

func addressInput(in AddressRequest) service.AddressInput {
	return service.AddressInput{
		Street:  in.Street,
		City:    in.City,
		State:   in.State,
		Postal:  in.Postal,
		Country: in.Country,
	}
}

func contactInput(in ContactRequest) service.ContactInput {
	return service.ContactInput{
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Whatsapp:      in.Whatsapp,
		Wechat:        in.Wechat,
		Address:       addressInput(in.Address),
	}
}

func shipmentInput(in ShipmentRequest) service.ShipmentInput {
	return service.ShipmentInput{
		Address:     addressInput(in.Address),
		Method:      in.Method,
		Cost:        in.Cost.Float64(),
		Tracking:    in.Tracking,
		Status:      enum.ShipmentStatus(in.Status),
		ETA:         mustParseDate(in.ETA),
		DeliveredAt: mustParseDate(in.DeliveredAt),
		Terms:       in.Terms,
		Notes:       in.Notes,
	}
}

func itemInput(in ItemRequest) service.ItemInput {
	out := service.ItemInput{
		Name:          in.Name,
		ProductNumber: in.ProductNumber,
		Description:   in.Description,
		Category:      in.Category,
		Unit:          in.Unit,
		Quantity:      in.Quantity.Float64(),
		CostPrice:     in.CostPrice.Float64(),
		SellingPrice:  in.SellingPrice.Float64(),
	}
	if in.Vendor != nil {
		vendor := contactInput(*in.Vendor)
		out.Vendor = &vendor
	}
	return out
}

func contactPatch(in *ContactPatchRequest) *service.ContactPatch {
	patch := &service.ContactPatch{
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Whatsapp:      in.Whatsapp,
		Wechat:        in.Wechat,
	}
	if in.Address != nil {
		patch.Address = addressPatch(in.Address)
	}
	return patch
}

func addressPatch(in *AddressPatchRequest) *service.AddressPatch {
	return &service.AddressPatch{
		Street:  in.Street,
		City:    in.City,
		State:   in.State,
		Postal:  in.Postal,
		Country: in.Country,
	}
}

func shipmentPatch(in *ShipmentPatchRequest) *service.ShipmentPatch {
	patch := &service.ShipmentPatch{
		Method:   in.Method,
		Tracking: in.Tracking,
		Status:   enum.ShipmentStatus(in.Status),
		Terms:    in.Terms,
		Notes:    in.Notes,
	}
	if in.Address != nil {
		patch.Address = addressPatch(in.Address)
	}
	if in.Cost != nil {
		cost := in.Cost.Float64()
		patch.Cost = &cost
	}
	if in.ETA != nil {
		eta := mustParseDate(*in.ETA)
		patch.ETA = &eta
	}
	if in.DeliveredAt != nil {
		delivered := mustParseDate(*in.DeliveredAt)
		patch.DeliveredAt = &delivered
	}
	return patch
}

// mapField carries the tri-state of f onto a converted value
func mapField[T, U any](f optional.Field[T], convert func(T) U) optional.Field[U] {
	if !f.IsSet() {
		return optional.Field[U]{}
	}
	if v, ok := f.Value(); ok {
		return optional.Of(convert(v))
	}
	return optional.Null[U]()
}

// mustParseDate assumes the value already passed date-format validation
func mustParseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := mustParseDate(*s)
	return &t
}
