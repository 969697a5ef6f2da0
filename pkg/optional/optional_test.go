package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldTriState(t *testing.T) {
	type patch struct {
		Remarks      Field[string]  `json:"remarks"`
		Discount     Field[float64] `json:"discount"`
		PaymentTerms Field[string]  `json:"paymentTerms"`
	}

	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"remarks": null, "discount": 12.5}`), &p))

	assert.True(t, p.Remarks.IsSet())
	assert.True(t, p.Remarks.IsNull())

	assert.True(t, p.Discount.IsSet())
	assert.False(t, p.Discount.IsNull())
	v, ok := p.Discount.Value()
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	// Absent field stays unset, unlike an explicit null.
	assert.False(t, p.PaymentTerms.IsSet())
	assert.Equal(t, "30", p.PaymentTerms.Or("30"))
	assert.Equal(t, "", p.Remarks.Or(""))
}
