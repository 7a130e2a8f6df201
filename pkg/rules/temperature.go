package rules

import (
	"math"
	"strconv"
)

// InvalidTemperature is the text form of an out-of-range conversion.
const InvalidTemperature = "Invalid Temperature"

// Convertible Celsius range, inclusive.
const (
	MinCelsius = -100.0
	MaxCelsius = 100.0
)

// Temperature is the result of CelsiusToFahrenheit. When Valid is false the
// input was out of range and Fahrenheit carries no meaning.
type Temperature struct {
	Fahrenheit float64
	Valid      bool
}

// String renders the Fahrenheit value, or InvalidTemperature.
func (t Temperature) String() string {
	if !t.Valid {
		return InvalidTemperature
	}
	return strconv.FormatFloat(t.Fahrenheit, 'f', -1, 64)
}

// CelsiusToFahrenheit converts c when it lies in [-100, 100]. NaN is out of range.
func CelsiusToFahrenheit(c float64) Temperature {
	if math.IsNaN(c) || c < MinCelsius || c > MaxCelsius {
		return Temperature{}
	}
	return Temperature{Fahrenheit: c*9/5 + 32, Valid: true}
}
