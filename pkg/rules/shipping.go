package rules

import "fmt"

// ShippingType selects the shipping rate table.
type ShippingType string

const (
	ShippingStandard ShippingType = "standard"
	ShippingExpress  ShippingType = "express"
)

// Item is one shipped item.
type Item struct {
	Weight float64 `json:"weight" yaml:"weight" mapstructure:"weight"`
}

// shippingRates holds the cost for a total weight of at most 5, at most 10,
// and above 10.
var shippingRates = map[ShippingType][3]float64{
	ShippingStandard: {10, 15, 20},
	ShippingExpress:  {20, 30, 40},
}

// Valid reports whether t has a rate table.
func (t ShippingType) Valid() bool {
	_, ok := shippingRates[t]
	return ok
}

// CalculateItemsShippingCost prices a shipment by its total weight. A weight
// exactly on a boundary (5 or 10) is charged at the lower tier.
func CalculateItemsShippingCost(items []Item, shippingType ShippingType) (float64, error) {
	rates, ok := shippingRates[shippingType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidShippingType, string(shippingType))
	}

	var weight float64
	for _, it := range items {
		weight += it.Weight
	}

	switch {
	case weight <= 5:
		return rates[0], nil
	case weight <= 10:
		return rates[1], nil
	default:
		return rates[2], nil
	}
}
