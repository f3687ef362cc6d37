package password

// Category is an ordered strength rating.
type Category int

const (
	Weak Category = iota
	Medium
	Strong
	VeryStrong
)

func (c Category) String() string {
	switch c {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// Report describes the estimated strength of a candidate password.
type Report struct {
	Category Category
	Score    int
	Criteria []string
}

// Length thresholds and their score contribution. Each class present adds one
// more point, giving a 0..7 scale.
var lengthCriteria = []struct {
	min  int
	name string
}{
	{8, "length >= 8"},
	{12, "length >= 12"},
	{16, "length >= 16"},
}

// EstimateStrength scores candidate from its length and character-class
// diversity. Purely structural: no dictionary or breach-list lookups, and no
// relationship to how the candidate was generated. The empty string yields
// the lowest category.
func EstimateStrength(candidate string) Report {
	var report Report

	for _, c := range lengthCriteria {
		if len(candidate) >= c.min {
			report.Score++
			report.Criteria = append(report.Criteria, c.name)
		}
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for i := 0; i < len(candidate); i++ {
		switch ch := candidate[i]; {
		case ch >= 'a' && ch <= 'z':
			hasLower = true
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	classes := []struct {
		present bool
		name    string
	}{
		{hasLower, "contains lowercase"},
		{hasUpper, "contains uppercase"},
		{hasDigit, "contains digit"},
		{hasSymbol, "contains symbol"},
	}
	for _, c := range classes {
		if c.present {
			report.Score++
			report.Criteria = append(report.Criteria, c.name)
		}
	}

	switch {
	case report.Score >= 7:
		report.Category = VeryStrong
	case report.Score >= 5:
		report.Category = Strong
	case report.Score >= 3:
		report.Category = Medium
	default:
		report.Category = Weak
	}

	return report
}
