// Package extract pulls typed scalars out of the value wrappers that
// the upstream document extraction emits.
//
// Extraction never fails: a missing wrapper, an empty value or a value
// that does not parse always collapses to nil.
package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field is the wrapper object the extraction emits for a single value.
// Date fields may carry an epoch marker instead of a plain value.
type Field struct {
	Value any `json:"value"`
	Date  any `json:"$date"`
}

// dateLayouts are tried in order when a date comes as a string.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// String returns the field value as a string. Empty strings extract to
// nil, numbers are stringified.
func String(f *Field) *string {
	if f == nil || f.Value == nil {
		return nil
	}

	var s string
	switch value := f.Value.(type) {
	case string:
		s = value
	case float64:
		s = strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(value)
	default:
		return nil
	}

	if s == "" {
		return nil
	}

	return &s
}

// Float parses the field value as a floating point number.
func Float(f *Field) *float64 {
	if f == nil || f.Value == nil {
		return nil
	}

	switch value := f.Value.(type) {
	case float64:
		return &value
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil
		}
		return &parsed
	}

	return nil
}

// Int parses the field value as an integer. Fractions are truncated.
func Int(f *Field) *int {
	parsed := Float(f)
	if parsed == nil {
		return nil
	}

	i := int(*parsed)
	return &i
}

// Decimal parses the field value as an arbitrary precision decimal.
// It is used for all monetary amounts.
func Decimal(f *Field) *decimal.Decimal {
	if f == nil || f.Value == nil {
		return nil
	}

	switch value := f.Value.(type) {
	case float64:
		d := decimal.NewFromFloat(value)
		return &d
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil
		}
		return &d
	}

	return nil
}

// Date parses the field as a calendar timestamp. An embedded epoch
// marker takes precedence over the plain value.
func Date(f *Field) *time.Time {
	if f == nil {
		return nil
	}

	if f.Date != nil {
		return parseDate(f.Date)
	}

	return parseDate(f.Value)
}

func parseDate(value any) *time.Time {
	switch v := value.(type) {
	case float64:
		// Epoch milliseconds
		t := time.UnixMilli(int64(v)).In(time.UTC)
		return &t
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				t = t.In(time.UTC)
				return &t
			}
		}
	}

	return nil
}
