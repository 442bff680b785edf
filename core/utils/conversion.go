package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToFloat64 converts various types to float64 using explicit type switching.
// Invalid input, NaN, and infinities all convert to 0 so broken values never
// reach persisted quantities.
func ToFloat64(val any) float64 {
	var f float64

	switch v := val.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint64:
		f = float64(v)
	case uint32:
		f = float64(v)
	case string:
		f, _ = strconv.ParseFloat(strings.TrimSpace(v), 64)
	case []byte:
		f, _ = strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
	case nil:
		f = 0
	default:
		f, _ = strconv.ParseFloat(fmt.Sprintf("%v", v), 64)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return ToFloat64(v) == 1
	case string:
		return v == "1" || strings.EqualFold(v, "true")
	case []byte:
		s := string(v)
		return s == "1" || strings.EqualFold(s, "true")
	default:
		return false
	}
}
