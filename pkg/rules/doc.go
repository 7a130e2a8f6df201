// Package rules holds the stateless business-rule functions: number
// classification, grading, triangle validity, pricing and shipping tiers,
// account field checks and temperature conversion.
//
// Every function is deterministic and side-effect free. Failures follow three
// distinct conventions, chosen per function and never mixed:
//
//   - Divide returns 0 for a zero divisor instead of failing.
//   - CheckNumberStatus and CalculateItemsShippingCost return typed errors
//     (ErrNotNumeric, ErrInvalidShippingType) that callers detect with errors.Is.
//   - CelsiusToFahrenheit returns an in-band invalid Temperature for inputs
//     outside [-100, 100]; callers check Temperature.Valid.
//
// Tier boundaries are part of the contract and are covered by table tests at
// both edges of every band.
package rules
