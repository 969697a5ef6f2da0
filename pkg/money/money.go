package money

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Normalize rounds a monetary value to the nearest cent.
func Normalize(v float64) float64 {
	return math.Round(v*100) / 100
}

// Parse converts a numeric string to a float. Unparseable input yields 0
// rather than an error; callers that need to reject bad input must
// validate before parsing.
func Parse(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return n
}

// HasMaxTwoDecimals reports whether v carries at most two decimal places.
func HasMaxTwoDecimals(v float64) bool {
	scaled := v * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}

// Amount is a monetary value that accepts either a JSON number or a
// numeric string on the wire. The raw value is preserved as-is so that
// decimal-place validation still sees what the caller sent; rounding is
// the calculator's job, not the decoder's.
type Amount float64

func (a Amount) Float64() float64 {
	return float64(a)
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = Amount(Parse(s))
	return nil
}
