package analysis

import "math"

// Rounding applied when publishing results; keeps floating-point noise
// out of consumer-facing numbers.
const (
	scorePlaces  = 6
	systemPlaces = 4
)

func roundTo(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

func roundScore(v float64) float64 {
	return roundTo(v, scorePlaces)
}

func roundSystem(v float64) float64 {
	return roundTo(v, systemPlaces)
}
