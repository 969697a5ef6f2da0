package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sinok/quotation-api/internal/domain/entity"
	"github.com/sinok/quotation-api/internal/domain/enum"
	"github.com/sinok/quotation-api/pkg/optional"
)

func storedQuotation() *entity.Quotation {
	terms := "30"
	remarks := "Net 30 on the balance"
	return &entity.Quotation{
		Number: "QT-0007",
		Customer: entity.Contact{
			Name:  "Globex Corp",
			Email: "buyer@globex.test",
			Phone: "+14155550123",
			Address: entity.Address{
				Street:  "12 Harbor Road",
				City:    "Shanghai",
				Postal:  "200000",
				Country: "China",
			},
		},
		Shipment: entity.ShipmentInfo{
			Address: entity.Address{Street: "12 Harbor Road", City: "Shanghai", Postal: "200000", Country: "China"},
			Method:  "Sea Freight",
			Cost:    250,
			Status:  enum.ShipmentStatusProcessing,
		},
		Items: entity.QuotationItems{
			{Name: "Widget", Quantity: 3, SellingPrice: 99.99, Total: 299.97},
			{Name: "Gadget", Quantity: 4, SellingPrice: 39.99, Total: 159.96},
		},
		PaymentTerms: &terms,
		Discount:     30,
		Tax:          5,
		Subtotal:     459.93,
		Total:        434.93,
		Advance:      130.48,
		Remaining:    304.45,
		Remarks:      &remarks,
		Status:       enum.QuotationStatusDraft,
	}
}

func TestResolveUpdate(t *testing.T) {
	t.Run("empty patch changes nothing", func(t *testing.T) {
		existing := storedQuotation()

		updated := resolveUpdate(existing, &UpdateQuotationInput{})

		assert.Equal(t, *existing, updated)
	})

	t.Run("status change alone leaves derived fields untouched", func(t *testing.T) {
		existing := storedQuotation()

		updated := resolveUpdate(existing, &UpdateQuotationInput{
			Status: optional.Of(enum.QuotationStatusSent),
		})

		assert.Equal(t, enum.QuotationStatusSent, updated.Status)
		assert.Equal(t, 459.93, updated.Subtotal)
		assert.Equal(t, 434.93, updated.Total)
		assert.Equal(t, 130.48, updated.Advance)
		assert.Equal(t, 304.45, updated.Remaining)
	})

	t.Run("partial contact patch keeps unmentioned fields", func(t *testing.T) {
		existing := storedQuotation()

		updated := resolveUpdate(existing, &UpdateQuotationInput{
			Customer: &ContactPatch{Name: "Initech Ltd"},
		})

		assert.Equal(t, "Initech Ltd", updated.Customer.Name)
		assert.Equal(t, "buyer@globex.test", updated.Customer.Email)
		assert.Equal(t, "+14155550123", updated.Customer.Phone)
		assert.Equal(t, "Shanghai", updated.Customer.Address.City)
		// The stored record is untouched
		assert.Equal(t, "Globex Corp", existing.Customer.Name)
	})

	t.Run("nested address patch merges field by field", func(t *testing.T) {
		existing := storedQuotation()

		updated := resolveUpdate(existing, &UpdateQuotationInput{
			Customer: &ContactPatch{
				Address: &AddressPatch{City: "Shenzhen"},
			},
		})

		assert.Equal(t, "Shenzhen", updated.Customer.Address.City)
		assert.Equal(t, "12 Harbor Road", updated.Customer.Address.Street)
		assert.Equal(t, "200000", updated.Customer.Address.Postal)
	})

	t.Run("shipment patch overrides cost and status, keeps the rest", func(t *testing.T) {
		existing := storedQuotation()
		cost := 310.559
		eta := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

		updated := resolveUpdate(existing, &UpdateQuotationInput{
			Shipment: &ShipmentPatch{
				Cost:   &cost,
				Status: enum.ShipmentStatusInTransit,
				ETA:    &eta,
			},
		})

		assert.Equal(t, 310.56, updated.Shipment.Cost)
		assert.Equal(t, enum.ShipmentStatusInTransit, updated.Shipment.Status)
		assert.Equal(t, eta, updated.Shipment.ETA)
		assert.Equal(t, "Sea Freight", updated.Shipment.Method)
	})

	t.Run("items replace the list and trigger a recompute", func(t *testing.T) {
		existing := storedQuotation()
		vendor := ContactInput{Name: "Acme Supplies", Email: "sales@acme.test", Phone: "+14155550100"}

		updated := resolveUpdate(existing, &UpdateQuotationInput{
			HasItems: true,
			Items: []ItemInput{
				{Name: "Sprocket", Quantity: 10, SellingPrice: 20, Vendor: &vendor},
			},
		})

		assert.Len(t, updated.Items, 1)
		assert.Equal(t, "Sprocket", updated.Items[0].Name)
		assert.Equal(t, 200.0, updated.Subtotal)
		// discount 30 and tax 5 carry over from the stored record
		assert.Equal(t, 175.0, updated.Total)
		// the patch carries no paymentTerms, so the stored advance carries over
		assert.Equal(t, 130.48, updated.Advance)
		assert.Equal(t, 44.52, updated.Remaining)
	})

	t.Run("discount change recomputes with patched payment terms", func(t *testing.T) {
		existing := storedQuotation()

		updated := resolveUpdate(existing, &UpdateQuotationInput{
			Discount:     optional.Of(0.0),
			PaymentTerms: optional.Of("50"),
		})

		assert.Equal(t, 459.93, updated.Subtotal)
		assert.Equal(t, 464.93, updated.Total)
		assert.Equal(t, 232.47, updated.Advance)
		assert.Equal(t, 232.46, updated.Remaining)
	})

	t.Run("explicit null clears optional scalars", func(t *testing.T) {
		existing := storedQuotation()

		updated := resolveUpdate(existing, &UpdateQuotationInput{
			PaymentTerms: optional.Null[string](),
			Remarks:      optional.Null[string](),
			ValidUntil:   optional.Null[time.Time](),
		})

		assert.Nil(t, updated.PaymentTerms)
		assert.Nil(t, updated.Remarks)
		assert.Nil(t, updated.ValidUntil)
		// clearing paymentTerms alone does not recompute
		assert.Equal(t, 130.48, updated.Advance)
	})
}
