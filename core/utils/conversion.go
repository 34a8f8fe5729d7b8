package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// It handles standard integer types, floats, numeric strings, and byte slices.
// Values that cannot be converted yield 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int16:
		return int(v)
	case int8:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case uint16:
		return int(v)
	case uint8:
		return int(v)
	case float64:
		return int(math.Round(v))
	case float32:
		return int(math.Round(float64(v)))
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return parseInt(v)
	case []byte:
		return parseInt(string(v))
	default:
		return parseInt(fmt.Sprintf("%v", v))
	}
}

func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(math.Round(f))
	}
	return 0
}

// ToString converts various types to string.
// nil becomes the empty string; floats are formatted without trailing zeros.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
