package validator

import "fmt"

func Min[T Numeric](field string, value, min T) Rule {
	return Rule{
		Check: func() bool { return value >= min },
		Error: newError(field, "min", fmt.Sprintf("must be at least %v", min), map[string]any{"min": min}),
	}
}

func Max[T Numeric](field string, value, max T) Rule {
	return Rule{
		Check: func() bool { return value <= max },
		Error: newError(field, "max", fmt.Sprintf("must be at most %v", max), map[string]any{"max": max}),
	}
}

// Between requires min <= value <= max.
func Between[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool { return value >= min && value <= max },
		Error: newError(field, "between",
			fmt.Sprintf("must be between %v and %v", min, max),
			map[string]any{"min": min, "max": max}),
	}
}

func NonNegative[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool { return value >= zero },
		Error: newError(field, "non_negative", "must not be negative", nil),
	}
}
