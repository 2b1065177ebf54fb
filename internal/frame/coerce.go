package frame

import (
	"math"
	"strconv"
	"strings"
)

// CoerceNumeric converts every cell of the named columns to a number.
// Integral text becomes int64, other finite numeric text becomes float64 and
// anything else becomes nil. Columns the frame does not have are skipped.
func (f *Frame) CoerceNumeric(columns ...string) {
	for _, column := range columns {
		i, ok := f.index[column]
		if !ok {
			continue
		}
		for _, row := range f.rows {
			row[i] = ToNumber(row[i])
		}
	}
}

// ToNumber converts a single cell. Numbers pass through (NaN and infinities
// become nil), strings are parsed, everything else becomes nil.
func ToNumber(v any) any {
	switch n := v.(type) {
	case nil:
		return nil
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil
		}
		return n
	case string:
		return parseNumber(n)
	default:
		return nil
	}
}

func parseNumber(s string) any {
	s = strings.TrimSpace(s)
	if s == "" || hasHexPrefix(s) || strings.ContainsRune(s, '_') {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}

func hasHexPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
