package validator

import (
	"fmt"
	"regexp"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

// PasswordPolicy lists the requirements checked by Password.
type PasswordPolicy struct {
	MinLength        int
	RequireUppercase bool
	RequireDigit     bool
	RequireSpecial   bool
}

// DefaultPasswordPolicy: at least 8 characters with an uppercase letter, a
// digit and a special character.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		RequireUppercase: true,
		RequireDigit:     true,
		RequireSpecial:   true,
	}
}

// Password expands policy into one rule per requirement so that every missing
// requirement is reported.
func Password(field, value string, policy PasswordPolicy) []Rule {
	rules := []Rule{Required(field, value), MinLen(field, value, policy.MinLength)}
	if policy.RequireUppercase {
		rules = append(rules, HasUppercase(field, value))
	}
	if policy.RequireDigit {
		rules = append(rules, HasDigit(field, value))
	}
	if policy.RequireSpecial {
		rules = append(rules, HasSpecialChar(field, value))
	}
	return rules
}

func HasUppercase(field, value string) Rule {
	return patternRule(field, value, uppercaseRegex, "uppercase", "an uppercase letter")
}

func HasDigit(field, value string) Rule {
	return patternRule(field, value, digitRegex, "digit", "a digit")
}

func HasSpecialChar(field, value string) Rule {
	return patternRule(field, value, specialCharRegex, "special", "a special character")
}

func patternRule(field, value string, re *regexp.Regexp, code, what string) Rule {
	return Rule{
		Check: func() bool { return re.MatchString(value) },
		Error: newError(field, "password_"+code, fmt.Sprintf("must contain at least %s", what), nil),
	}
}
