package wellbeing

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

type RegressionVerdict string

const (
	Significant           RegressionVerdict = "significant"
	NotSignificant        RegressionVerdict = "not_significant"
	RegressionUnavailable RegressionVerdict = "insufficient_data"
)

const (
	RegressionWindow      = 7
	SignificanceLevel     = 0.05
	perfectFitDenominator = 1e-20
)

// RegressionResult is the least-squares fit of the last RegressionWindow
// normalized scores against day index 0..6.
type RegressionResult struct {
	Verdict   RegressionVerdict `json:"verdict"`
	Direction Trend             `json:"direction,omitempty"`
	Slope     float64           `json:"slope"`
	Intercept float64           `json:"intercept"`
	R         float64           `json:"r"`
	P         float64           `json:"p"`
	StdErr    float64           `json:"std_err"`
}

// Rounded returns the result with r to 2 and p, stderr to 4 decimals.
func (r RegressionResult) Rounded() RegressionResult {
	r.R = roundTo(r.R, 2)
	r.P = roundTo(r.P, 4)
	r.StdErr = roundTo(r.StdErr, 4)
	return r
}

// DetectRegressionTrend fits an OLS line and tests slope = 0 with a
// two-sided t-test at SignificanceLevel. Calendar gaps are ignored: the
// independent variable is the position in the series.
func DetectRegressionTrend(scores []CompositeScore) RegressionResult {
	if len(scores) < RegressionWindow {
		return RegressionResult{Verdict: RegressionUnavailable}
	}

	y := normalized(scores[len(scores)-RegressionWindow:])
	x := make([]float64, RegressionWindow)
	for i := range x {
		x[i] = float64(i)
	}

	res := fit(x, y)
	res.Direction = Downtrend
	if res.Slope > 0 {
		res.Direction = Uptrend
	}
	res.Verdict = NotSignificant
	if res.P < SignificanceLevel {
		res.Verdict = Significant
	}
	return res
}

func fit(x, y []float64) RegressionResult {
	intercept, slope := stat.LinearRegression(x, y, nil, false)
	if stat.Variance(y, nil) == 0 {
		// Flat series: no correlation to test.
		return RegressionResult{Slope: 0, Intercept: intercept, R: 0, P: 1, StdErr: 0}
	}

	r := math.Max(-1, math.Min(1, stat.Correlation(x, y, nil)))
	df := float64(len(x) - 2)
	res := RegressionResult{Slope: slope, Intercept: intercept, R: r}

	denom := (1 - r) * (1 + r)
	if denom <= perfectFitDenominator {
		return res
	}

	t := r * math.Sqrt(df/denom)
	student := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	res.P = 2 * student.Survival(math.Abs(t))
	res.StdErr = math.Sqrt(denom * stat.Variance(y, nil) / stat.Variance(x, nil) / df)
	return res
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
