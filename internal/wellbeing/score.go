package wellbeing

import (
	"math"
	"time"
)

// Composite score calibration. The bounds are the raw scores of the two
// extreme days: stress=5, energy=1, productivity=1 and stress=1, energy=5,
// productivity=5.
const (
	WeightEnergy       = 0.4
	WeightProductivity = 0.4
	WeightStress       = -0.2

	CompositeMin = -0.2
	CompositeMax = 3.8

	// Means of integer ratings carry nothing past this precision.
	rawPrecision = 1e9
)

// CompositeScore is the single well-being signal derived for one day.
type CompositeScore struct {
	Date       time.Time `json:"date"`
	Raw        float64   `json:"raw"`
	Normalized float64   `json:"normalized"`
}

// Score applies the fixed linear weights and normalizes into [0, 1].
func Score(day DailyAggregate) CompositeScore {
	raw := WeightEnergy*day.EnergyMean +
		WeightProductivity*day.ProductivityMean +
		WeightStress*day.StressMean
	// Trim float noise so the documented extremes land exactly on 0 and 1.
	raw = math.Round(raw*rawPrecision) / rawPrecision

	norm := (raw - CompositeMin) / (CompositeMax - CompositeMin)
	return CompositeScore{
		Date:       day.Date,
		Raw:        raw,
		Normalized: math.Max(0, math.Min(1, norm)),
	}
}

func Scores(daily []DailyAggregate) []CompositeScore {
	scores := make([]CompositeScore, len(daily))
	for i, day := range daily {
		scores[i] = Score(day)
	}
	return scores
}

func normalized(scores []CompositeScore) []float64 {
	values := make([]float64, len(scores))
	for i, s := range scores {
		values[i] = s.Normalized
	}
	return values
}
