package validator

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// numericStringRegex matches the decimal notations accepted for numbers that
// arrive as text: optional surrounding whitespace, sign, fraction and exponent.
var numericStringRegex = regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?[ \t\n\r\v\f]*$`)

const numericSpace = " \t\n\r\v\f"

// CheckNumber reports whether v is numeric. With allowNull unset a zero value
// is rejected; with unsigned set a negative value is rejected.
func CheckNumber(v any, allowNull bool, unsigned bool) bool {
	f, ok := Float64(v)
	if !ok {
		return false
	}
	if !allowNull && f == 0 {
		return false
	}
	if unsigned && f < 0 {
		return false
	}
	return true
}

// Float64 converts a numeric value to float64.
// Booleans, nil, NaN and infinities are not numeric.
func Float64(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		return parseNumericString(n)
	case json.Number:
		return parseNumericString(string(n))
	case float64:
		f = n
	case float32:
		f = float64(n)
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			f = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			f = rv.Float()
		default:
			return 0, false
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int64 converts a numeric value to int64, truncating any fraction.
// Integer inputs are converted without going through float64.
func Int64(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return math.MaxInt64, true
		}
		return int64(u), true
	}

	if s, ok := textOf(v); ok {
		trimmed := strings.Trim(s, numericSpace)
		if i, err := strconv.ParseInt(strings.TrimPrefix(trimmed, "+"), 10, 64); err == nil {
			return i, true
		}
	}

	f, ok := Float64(v)
	if !ok {
		return 0, false
	}
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64, true
	case f <= math.MinInt64:
		return math.MinInt64, true
	}
	return int64(math.Trunc(f)), true
}

func textOf(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return string(s), true
	}
	return "", false
}

func parseNumericString(s string) (float64, bool) {
	if !numericStringRegex.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.Trim(s, numericSpace), 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
