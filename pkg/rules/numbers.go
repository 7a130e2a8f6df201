package rules

import (
	"fmt"
	"math"
	"reflect"
)

// Number status labels returned by CheckNumberStatus.
const (
	StatusZero     = "Zero"
	StatusPositive = "Positive"
	StatusNegative = "Negative"
)

func IsEven(n int) bool {
	return n%2 == 0
}

// Divide returns a/b, or 0 when b is zero.
func Divide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// CheckNumberStatus classifies v as Zero, Positive or Negative.
// v may be any integer or floating point kind, including named numeric types;
// anything else, nil included, yields ErrNotNumeric.
func CheckNumberStatus(v any) (string, error) {
	sign, ok := signOf(v)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
	switch {
	case sign == 0:
		return StatusZero, nil
	case sign > 0:
		return StatusPositive, nil
	default:
		return StatusNegative, nil
	}
}

func signOf(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return compare(rv.Int(), 0), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return compare(rv.Uint(), 0), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return 0, false
		}
		return compare(f, 0), true
	default:
		return 0, false
	}
}

func compare[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
