package service

import (
	"strconv"

	"github.com/sinok/quotation-api/internal/domain/entity"
	"github.com/sinok/quotation-api/pkg/money"
)

// Totals is the derived financial state of a quotation
type Totals struct {
	Subtotal  float64
	Total     float64
	Advance   float64
	Remaining float64
}

// ComputeTotals derives a quotation's financial roll-up from its line
// items, discount, tax and payment terms. paymentTerms is a percentage
// string ("30" means a 30% advance); when empty or unparseable the
// previous advance carries over unchanged (0 on create). Pure function.
func ComputeTotals(items []entity.QuotationItem, discount, tax float64, paymentTerms string, previousAdvance float64) Totals {
	var sum float64
	for _, item := range items {
		sum += item.Total
	}
	subtotal := money.Normalize(sum)
	total := money.Normalize(subtotal - money.Normalize(discount) + money.Normalize(tax))

	advance := previousAdvance
	if paymentTerms != "" {
		if pct, err := strconv.ParseFloat(paymentTerms, 64); err == nil {
			advance = money.Normalize(total * pct / 100)
		}
	}

	return Totals{
		Subtotal:  subtotal,
		Total:     total,
		Advance:   advance,
		Remaining: money.Normalize(total - advance),
	}
}

// buildItem constructs a line item with normalized numerics and a
// derived total. The vendor must already be resolved to a complete contact.
func buildItem(in ItemInput, vendor entity.Contact) entity.QuotationItem {
	quantity := money.Normalize(in.Quantity)
	sellingPrice := money.Normalize(in.SellingPrice)
	return entity.QuotationItem{
		Name:          in.Name,
		ProductNumber: in.ProductNumber,
		Description:   in.Description,
		Category:      in.Category,
		Unit:          in.Unit,
		Quantity:      quantity,
		CostPrice:     money.Normalize(in.CostPrice),
		SellingPrice:  sellingPrice,
		Total:         money.Normalize(quantity * sellingPrice),
		Vendor:        vendor,
	}
}

// buildItems rebuilds the full item list. Items without their own vendor
// fall back to defaultVendor; persisted items always carry a complete
// vendor contact.
func buildItems(inputs []ItemInput, defaultVendor *ContactInput) entity.QuotationItems {
	items := make(entity.QuotationItems, 0, len(inputs))
	for _, in := range inputs {
		vendor := in.Vendor
		if vendor == nil {
			vendor = defaultVendor
		}
		var contact entity.Contact
		if vendor != nil {
			contact = contactFromInput(*vendor)
		}
		items = append(items, buildItem(in, contact))
	}
	return items
}
