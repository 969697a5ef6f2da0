package service

import (
	"time"

	"github.com/sinok/quotation-api/internal/domain/entity"
	"github.com/sinok/quotation-api/internal/domain/enum"
	"github.com/sinok/quotation-api/pkg/money"
	"github.com/sinok/quotation-api/pkg/optional"
)

// AddressInput carries a complete postal address
type AddressInput struct {
	Street  string
	City    string
	State   string
	Postal  string
	Country string
}

// ContactInput carries a complete contact record
type ContactInput struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Whatsapp      string
	Wechat        string
	Address       AddressInput
}

// ShipmentInput carries complete shipment details
type ShipmentInput struct {
	Address     AddressInput
	Method      string
	Cost        float64
	Tracking    string
	Status      enum.ShipmentStatus
	ETA         time.Time
	DeliveredAt time.Time
	Terms       string
	Notes       string
}

// ItemInput carries one line item. Vendor may be nil on create, in which
// case the quotation-level vendor is used.
type ItemInput struct {
	Name          string
	ProductNumber string
	Description   string
	Category      string
	Unit          string
	Quantity      float64
	CostPrice     float64
	SellingPrice  float64
	Vendor        *ContactInput
}

// CreateQuotationInput represents the input for creating a quotation
type CreateQuotationInput struct {
	Customer     ContactInput
	Vendor       ContactInput
	Shipment     ShipmentInput
	Items        []ItemInput
	ValidUntil   *time.Time
	PaymentTerms *string
	Discount     float64
	Tax          float64
	Remarks      *string
}

// AddressPatch overrides individual address fields; empty fields keep
// the existing value
type AddressPatch struct {
	Street  string
	City    string
	State   string
	Postal  string
	Country string
}

// ContactPatch overrides individual contact fields; empty fields keep
// the existing value
type ContactPatch struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Whatsapp      string
	Wechat        string
	Address       *AddressPatch
}

// ShipmentPatch overrides individual shipment fields
type ShipmentPatch struct {
	Address     *AddressPatch
	Method      string
	Cost        *float64
	Tracking    string
	Status      enum.ShipmentStatus
	ETA         *time.Time
	DeliveredAt *time.Time
	Terms       string
	Notes       string
}

// UpdateQuotationInput is a partial patch over an existing quotation.
// Nested groups (customer, shipment) are only touched when supplied, and
// their leaves fall back to existing values when empty. Top-level
// scalars use tri-state fields: absent preserves, present (including
// explicit null) overrides. Items, when supplied, fully replace the
// existing list.
type UpdateQuotationInput struct {
	Customer     *ContactPatch
	Shipment     *ShipmentPatch
	Items        []ItemInput
	HasItems     bool
	ValidUntil   optional.Field[time.Time]
	PaymentTerms optional.Field[string]
	Discount     optional.Field[float64]
	Tax          optional.Field[float64]
	Remarks      optional.Field[string]
	Status       optional.Field[enum.QuotationStatus]
}

func addressFromInput(in AddressInput) entity.Address {
	return entity.Address{
		Street:  in.Street,
		City:    in.City,
		State:   in.State,
		Postal:  in.Postal,
		Country: in.Country,
	}
}

func contactFromInput(in ContactInput) entity.Contact {
	return entity.Contact{
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Whatsapp:      in.Whatsapp,
		Wechat:        in.Wechat,
		Address:       addressFromInput(in.Address),
	}
}

func shipmentFromInput(in ShipmentInput) entity.ShipmentInfo {
	status := in.Status
	if status == "" {
		status = enum.ShipmentStatusProcessing
	}
	return entity.ShipmentInfo{
		Address:     addressFromInput(in.Address),
		Method:      in.Method,
		Cost:        money.Normalize(in.Cost),
		Tracking:    in.Tracking,
		Status:      status,
		ETA:         in.ETA,
		DeliveredAt: in.DeliveredAt,
		Terms:       in.Terms,
		Notes:       in.Notes,
	}
}
