package schema

// RankedWeapon adds presentation data to a weapon row of a chart.
type RankedWeapon struct {
	Rank   int     `json:"rank"`
	Label  string  `json:"label"`
	Weapon string  `json:"weapon"`
	Score  float64 `json:"score"`
}

// GetPlainLabel returns a plain text label for a normalized value in [0, 1].
func GetPlainLabel(score float64) string {
	switch {
	case score >= 0.8:
		return "Top"
	case score >= 0.6:
		return "High"
	case score >= 0.4:
		return "Mid"
	default:
		return "Low"
	}
}
