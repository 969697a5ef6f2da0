package service

import (
	"github.com/sinok/quotation-api/internal/domain/entity"
	"github.com/sinok/quotation-api/pkg/money"
)

// resolveUpdate merges a partial patch over an existing quotation and
// returns the complete replacement record. The existing record is never
// mutated. Totals are recomputed only when the patch touches items,
// discount or tax; an update that touches neither leaves every derived
// field untouched.
func resolveUpdate(existing *entity.Quotation, patch *UpdateQuotationInput) entity.Quotation {
	updated := *existing

	if patch.Customer != nil {
		updated.Customer = mergeContact(existing.Customer, patch.Customer)
	}

	if patch.Shipment != nil {
		updated.Shipment = mergeShipment(existing.Shipment, patch.Shipment)
	}

	if patch.HasItems {
		updated.Items = buildItems(patch.Items, nil)
	}

	if patch.ValidUntil.IsSet() {
		if v, ok := patch.ValidUntil.Value(); ok {
			updated.ValidUntil = &v
		} else {
			updated.ValidUntil = nil
		}
	}
	if patch.PaymentTerms.IsSet() {
		if v, ok := patch.PaymentTerms.Value(); ok {
			updated.PaymentTerms = &v
		} else {
			updated.PaymentTerms = nil
		}
	}
	if patch.Discount.IsSet() {
		updated.Discount = money.Normalize(patch.Discount.Or(0))
	}
	if patch.Tax.IsSet() {
		updated.Tax = money.Normalize(patch.Tax.Or(0))
	}
	if patch.Remarks.IsSet() {
		if v, ok := patch.Remarks.Value(); ok {
			updated.Remarks = &v
		} else {
			updated.Remarks = nil
		}
	}
	if v, ok := patch.Status.Value(); ok {
		updated.Status = v
	}

	if patch.HasItems || patch.Discount.IsSet() || patch.Tax.IsSet() {
		// The advance is only re-derived from paymentTerms when the patch
		// itself carries paymentTerms; otherwise the stored advance carries
		// over even if the stored record has terms set.
		totals := ComputeTotals(updated.Items, updated.Discount, updated.Tax,
			patch.PaymentTerms.Or(""), existing.Advance)
		updated.Subtotal = totals.Subtotal
		updated.Total = totals.Total
		updated.Advance = totals.Advance
		updated.Remaining = totals.Remaining
	}

	return updated
}

func mergeContact(existing entity.Contact, patch *ContactPatch) entity.Contact {
	merged := entity.Contact{
		Name:          orElse(patch.Name, existing.Name),
		ContactPerson: orElse(patch.ContactPerson, existing.ContactPerson),
		Email:         orElse(patch.Email, existing.Email),
		Phone:         orElse(patch.Phone, existing.Phone),
		Whatsapp:      orElse(patch.Whatsapp, existing.Whatsapp),
		Wechat:        orElse(patch.Wechat, existing.Wechat),
		Address:       existing.Address,
	}
	if patch.Address != nil {
		merged.Address = mergeAddress(existing.Address, patch.Address)
	}
	return merged
}

func mergeAddress(existing entity.Address, patch *AddressPatch) entity.Address {
	return entity.Address{
		Street:  orElse(patch.Street, existing.Street),
		City:    orElse(patch.City, existing.City),
		State:   orElse(patch.State, existing.State),
		Postal:  orElse(patch.Postal, existing.Postal),
		Country: orElse(patch.Country, existing.Country),
	}
}

func mergeShipment(existing entity.ShipmentInfo, patch *ShipmentPatch) entity.ShipmentInfo {
	merged := entity.ShipmentInfo{
		Address:     existing.Address,
		Method:      orElse(patch.Method, existing.Method),
		Cost:        existing.Cost,
		Tracking:    orElse(patch.Tracking, existing.Tracking),
		Status:      existing.Status,
		ETA:         existing.ETA,
		DeliveredAt: existing.DeliveredAt,
		Terms:       orElse(patch.Terms, existing.Terms),
		Notes:       orElse(patch.Notes, existing.Notes),
	}
	if patch.Address != nil {
		merged.Address = mergeAddress(existing.Address, patch.Address)
	}
	if patch.Cost != nil {
		merged.Cost = money.Normalize(*patch.Cost)
	}
	if patch.Status != "" {
		merged.Status = patch.Status
	}
	if patch.ETA != nil {
		merged.ETA = *patch.ETA
	}
	if patch.DeliveredAt != nil {
		merged.DeliveredAt = *patch.DeliveredAt
	}
	return merged
}

func orElse(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
