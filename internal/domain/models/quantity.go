package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// TokenDecimals is the fixed-point scale of TRC20 transfer quantities.
const TokenDecimals = 6

// Quantity is a lenient numeric field from the explorer API. Upstream sends
// amounts as JSON strings, numbers or null; anything unparsable reads as zero.
type Quantity struct {
	raw   string
	value decimal.Decimal
	valid bool
}

// NewQuantity parses s. Invalid input yields a zero, invalid Quantity.
func NewQuantity(s string) Quantity {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{raw: s}
	}
	return Quantity{raw: s, value: d, valid: true}
}

// QuantityFromInt is a convenience for building records in code.
func QuantityFromInt(v int64) Quantity {
	d := decimal.NewFromInt(v)
	return Quantity{raw: d.String(), value: d, valid: true}
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*q = Quantity{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*q = Quantity{}
			return nil
		}
		*q = NewQuantity(s)
		return nil
	}
	*q = NewQuantity(string(b))
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.valid {
		return []byte("null"), nil
	}
	return json.Marshal(q.value.String())
}

// Valid reports whether upstream sent a parsable number.
func (q Quantity) Valid() bool { return q.valid }

// Raw is the value exactly as upstream sent it.
func (q Quantity) Raw() string { return q.raw }

// Value returns the parsed number, or zero.
func (q Quantity) Value() decimal.Decimal {
	if !q.valid {
		return decimal.Zero
	}
	return q.value
}

// Scaled divides the raw integer units by 10^decimals.
func (q Quantity) Scaled(decimals int32) decimal.Decimal {
	return q.Value().Shift(-decimals)
}
