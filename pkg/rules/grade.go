package rules

// GetGrade maps a score to a letter. Each band includes its lower edge:
// 90 and above is "A", 80 is "B", 70 is "C", anything lower is "F".
func GetGrade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	default:
		return "F"
	}
}
