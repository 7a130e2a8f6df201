package rules

const (
	TriangleYes = "Yes, it's a triangle!"
	TriangleNo  = "No, it's not a triangle."
)

// IsTriangle reports whether sides a, b and c form a non-degenerate triangle:
// every side must be strictly shorter than the sum of the other two.
func IsTriangle(a, b, c float64) string {
	if a < b+c && b < a+c && c < a+b {
		return TriangleYes
	}
	return TriangleNo
}
