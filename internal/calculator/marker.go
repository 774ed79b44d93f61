package calculator

// Marker colors, bucketed by cleanliness.
const (
	ColorGreen  = "green"
	ColorBlue   = "blue"
	ColorYellow = "yellow"
	ColorRed    = "red"
)

// MarkerColor picks the map marker color for a cleanliness score.
func MarkerColor(cleanliness float64) string {
	switch {
	case cleanliness >= 4:
		return ColorGreen
	case cleanliness >= 3:
		return ColorBlue
	case cleanliness >= 2:
		return ColorYellow
	default:
		return ColorRed
	}
}
