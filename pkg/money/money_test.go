package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"already two decimals", 129.99, 129.99},
		{"rounds half up", 130.479, 130.48},
		{"rounds down", 130.474, 130.47},
		{"integer unchanged", 450, 450},
		{"zero", 0, 0},
		{"float noise", 0.1 + 0.2, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, v := range []float64{0, 0.005, 1.234567, 459.93, 99999.999, -50.505} {
		once := Normalize(v)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %v", v)
	}
}

func TestParse(t *testing.T) {
	assert.Equal(t, 129.99, Parse("129.99"))
	assert.Equal(t, 30.0, Parse("30"))
	assert.Equal(t, 10.5, Parse(" 10.50 "))
	// Unparseable strings silently become 0, matching the stored-data contract.
	assert.Equal(t, 0.0, Parse("abc"))
	assert.Equal(t, 0.0, Parse(""))
}

func TestHasMaxTwoDecimals(t *testing.T) {
	assert.True(t, HasMaxTwoDecimals(10.50))
	assert.True(t, HasMaxTwoDecimals(10))
	assert.False(t, HasMaxTwoDecimals(10.505))
}

func TestAmountUnmarshal(t *testing.T) {
	var payload struct {
		Discount Amount `json:"discount"`
		Tax      Amount `json:"tax"`
		Cost     Amount `json:"cost"`
	}
	err := json.Unmarshal([]byte(`{"discount": 50.00, "tax": "25.5", "cost": "oops"}`), &payload)
	require.NoError(t, err)
	assert.Equal(t, 50.0, payload.Discount.Float64())
	assert.Equal(t, 25.5, payload.Tax.Float64())
	assert.Equal(t, 0.0, payload.Cost.Float64())

	err = json.Unmarshal([]byte(`{"discount": true}`), &payload)
	assert.Error(t, err)
}
