package model

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexNumber decodes a webhook numeric field that may arrive as a JSON
// number, a numeric string, a blank string or null. Blank, absent or
// unparseable values decode to "absent" rather than an error, per the
// webhook contract.
type FlexNumber struct {
	value *decimal.Decimal
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	n.value = nil

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil
		}
		n.value = &d
		return nil
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil
	}
	n.value = &d
	return nil
}

// Decimal returns the parsed value, or nil when the field is absent.
func (n FlexNumber) Decimal() *decimal.Decimal {
	if n.value == nil {
		return nil
	}
	d := *n.value
	return &d
}

// Int returns the value truncated to an int, or nil when the field is
// absent or negative. Quantities are absolute non-negative counts.
func (n FlexNumber) Int() *int {
	if n.value == nil || n.value.IsNegative() {
		return nil
	}
	v := int(n.value.IntPart())
	return &v
}
