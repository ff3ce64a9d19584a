package validation

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func MaxLen(field, value string, maxLen int, v Violations) {
	if len([]rune(value)) > maxLen {
		v[field] = "too_long"
	}
}

func PositiveDecimal(field string, val decimal.Decimal, v Violations) {
	if val.Sign() <= 0 {
		v[field] = "must_be_positive"
	}
}

func NonNegativeDecimal(field string, val decimal.Decimal, v Violations) {
	if val.Sign() < 0 {
		v[field] = "must_not_be_negative"
	}
}

func PositiveInt(field string, val int, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}
