package validator

import (
	"fmt"
	"strings"
)

// Required fails on an empty or whitespace-only string.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: newError(field, "required", "field is required", nil),
	}
}

// MinLen counts bytes, matching how the account rules measure length.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool { return len(value) >= min },
		Error: newError(field, "min_length",
			fmt.Sprintf("must be at least %d characters long", min),
			map[string]any{"min": min}),
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return len(value) <= max },
		Error: newError(field, "max_length",
			fmt.Sprintf("must be at most %d characters long", max),
			map[string]any{"max": max}),
	}
}

// LenBetween requires min <= len(value) <= max.
func LenBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool { return len(value) >= min && len(value) <= max },
		Error: newError(field, "length_between",
			fmt.Sprintf("must be between %d and %d characters long", min, max),
			map[string]any{"min": min, "max": max}),
	}
}

// ContainsAll requires every substring to be present in value.
func ContainsAll(field, value string, substrings ...string) Rule {
	return Rule{
		Check: func() bool {
			for _, s := range substrings {
				if !strings.Contains(value, s) {
					return false
				}
			}
			return true
		},
		Error: newError(field, "contains",
			fmt.Sprintf("must contain %s", quoteAll(substrings)),
			map[string]any{"substrings": substrings}),
	}
}

func quoteAll(ss []string) string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}
