package rules

import "errors"

var (
	// ErrInvalidShippingType is returned for a shipping type other than standard or express.
	ErrInvalidShippingType = errors.New("invalid shipping type")

	// ErrNotNumeric is returned when a number classifier receives a non-numeric value.
	ErrNotNumeric = errors.New("value is not numeric")
)
