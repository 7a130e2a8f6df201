// Package validator provides the composable checks behind the login, password
// and email rules and the input validation of the order and shipment loaders.
//
// A Rule pairs a Check closure with the ValidationError reported when the
// check fails. Apply evaluates every rule and returns the failures as a
// ValidationErrors value, which implements error, so callers can both treat a
// validation failure as a plain error and inspect the offending fields:
//
//	err := validator.Apply(
//	    validator.LenBetween("username", username, 5, 20),
//	    validator.LenBetween("password", password, 8, 15),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs.Has("password") {
//	    // ...
//	}
//
// Rules are plain values built from their arguments; the package holds no
// state and every function is safe for concurrent use.
package validator
