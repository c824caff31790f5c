package parser

import (
	"encoding/json"
	"strconv"
	"strings"
)

// coerceAmount normalizes the model's dueAmount into whole currency units.
// The raw value may be a JSON number, a formatted string like
// "1,250.50 DZD" or "2.500.000,00 دج", or null. Currency text is stripped,
// the decimal separator is normalized, grouping separators are dropped, and
// the fractional part is truncated. Unparseable values yield nil.
func coerceAmount(raw json.RawMessage) *int64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		v := int64(n)
		return &v
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return coerceAmountString(s)
}

func coerceAmountString(s string) *int64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.ReplaceAll(b.String(), ",", ".")
	if cleaned == "" {
		return nil
	}

	// Every dot but the last is a grouping separator.
	if n := strings.Count(cleaned, "."); n > 1 {
		last := strings.LastIndexByte(cleaned, '.')
		cleaned = strings.ReplaceAll(cleaned[:last], ".", "") + cleaned[last:]
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	v := int64(f)
	return &v
}
