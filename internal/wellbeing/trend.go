package wellbeing

// Trend is the verdict of a trend detector.
type Trend string

const (
	Uptrend          Trend = "uptrend"
	Downtrend        Trend = "downtrend"
	NoTrend          Trend = "no_trend"
	InsufficientData Trend = "insufficient_data"
)

const (
	ShortTrendMinDays = 4
	ShortTrendWindow  = 3
)

// DetectShortTrend compares each of the last three scores with the 3-day
// rolling mean ending on the same day. The verdict is Uptrend (or Downtrend)
// only when every compared day is strictly above (or below) its mean.
func DetectShortTrend(scores []CompositeScore) Trend {
	if len(scores) < ShortTrendMinDays {
		return InsufficientData
	}

	values := normalized(scores)
	rolling := rollingMean(values, ShortTrendWindow)

	pairs := min(ShortTrendWindow, len(rolling))
	last := values[len(values)-pairs:]
	means := rolling[len(rolling)-pairs:]

	above, below := true, true
	for i := range last {
		if !(last[i] > means[i]) {
			above = false
		}
		if !(last[i] < means[i]) {
			below = false
		}
	}

	switch {
	case above:
		return Uptrend
	case below:
		return Downtrend
	default:
		return NoTrend
	}
}

// rollingMean returns the means of every full window; the leading positions
// without a full window are dropped.
func rollingMean(values []float64, window int) []float64 {
	if len(values) < window {
		return nil
	}
	means := make([]float64, 0, len(values)-window+1)
	for i := window - 1; i < len(values); i++ {
		sum := 0.0
		for _, v := range values[i-window+1 : i+1] {
			sum += v
		}
		means = append(means, sum/float64(window))
	}
	return means
}
