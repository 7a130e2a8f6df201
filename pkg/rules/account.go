package rules

import "github.com/dmitrymomot/whitebox/pkg/validator"

// Outcome strings of the account checks.
const (
	LoginSuccessful = "Login Successful"
	LoginFailed     = "Login Failed"
	Eligible        = "Eligible"
	NotEligible     = "Not Eligible"
	ValidEmail      = "Valid Email"
	InvalidEmail    = "Invalid Email"
)

// Field limits enforced by the account checks. Lengths are in bytes.
const (
	UsernameMinLen = 5
	UsernameMaxLen = 20
	PasswordMinLen = 8
	PasswordMaxLen = 15
	EmailMinLen    = 5
	EmailMaxLen    = 50
	MinAge         = 18
	MaxAge         = 65
)

// ValidatePassword reports whether s is at least 8 characters long and
// contains an uppercase letter, a digit and a special character.
func ValidatePassword(s string) bool {
	return PasswordErrors(s) == nil
}

// PasswordErrors returns the unmet password requirements as validator.ValidationErrors.
func PasswordErrors(s string) error {
	return validator.Apply(validator.Password("password", s, validator.DefaultPasswordPolicy())...)
}

// ValidateLogin checks the username and password lengths.
func ValidateLogin(username, password string) string {
	if LoginErrors(username, password) != nil {
		return LoginFailed
	}
	return LoginSuccessful
}

// LoginErrors names which of username and password is out of range.
func LoginErrors(username, password string) error {
	return validator.Apply(
		validator.LenBetween("username", username, UsernameMinLen, UsernameMaxLen),
		validator.LenBetween("password", password, PasswordMinLen, PasswordMaxLen),
	)
}

// VerifyAge accepts ages from 18 to 65 inclusive.
func VerifyAge(age int) string {
	if validator.Valid(validator.Between("age", age, MinAge, MaxAge)) {
		return Eligible
	}
	return NotEligible
}

// ValidateEmail requires a length between 5 and 50 and both "@" and ".".
func ValidateEmail(s string) string {
	if EmailErrors(s) != nil {
		return InvalidEmail
	}
	return ValidEmail
}

func EmailErrors(s string) error {
	return validator.Apply(
		validator.LenBetween("email", s, EmailMinLen, EmailMaxLen),
		validator.ContainsAll("email", s, "@", "."),
	)
}
