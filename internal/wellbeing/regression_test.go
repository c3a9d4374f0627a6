package wellbeing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectRegressionTrendInsufficient(t *testing.T) {
	for n := 0; n < RegressionWindow; n++ {
		values := make([]float64, n)
		got := DetectRegressionTrend(series(values...))
		require.Equal(t, RegressionUnavailable, got.Verdict)
	}
}

func TestDetectRegressionTrendLinearRise(t *testing.T) {
	res := DetectRegressionTrend(series(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7))
	require.Equal(t, Significant, res.Verdict)
	require.Equal(t, Uptrend, res.Direction)
	require.InDelta(t, 0.1, res.Slope, 1e-9)
	require.InDelta(t, 0.1, res.Intercept, 1e-9)
	require.Less(t, res.P, SignificanceLevel)
	require.InDelta(t, 1.0, res.R, 1e-9)
}

func TestDetectRegressionTrendUsesLastSevenDays(t *testing.T) {
	res := DetectRegressionTrend(series(0.0, 0.0, 0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3))
	require.Equal(t, Significant, res.Verdict)
	require.Equal(t, Downtrend, res.Direction)
	require.InDelta(t, -0.1, res.Slope, 1e-9)
}

func TestDetectRegressionTrendNoisy(t *testing.T) {
	// r is about 0.11, p about 0.82.
	res := DetectRegressionTrend(series(0.5, 0.2, 0.8, 0.3, 0.7, 0.4, 0.5))
	require.Equal(t, NotSignificant, res.Verdict)
	require.GreaterOrEqual(t, res.P, SignificanceLevel)
	require.Greater(t, res.StdErr, 0.0)
}

func TestDetectRegressionTrendKnownValues(t *testing.T) {
	// Reference values from an OLS fit of y on x = 0..6.
	res := DetectRegressionTrend(series(0.30, 0.35, 0.32, 0.45, 0.50, 0.48, 0.60))
	require.Equal(t, Significant, res.Verdict)
	require.Equal(t, Uptrend, res.Direction)
	require.InDelta(t, 0.0478571, res.Slope, 1e-6)
	require.InDelta(t, 0.285, res.Intercept, 1e-6)
	require.InDelta(t, 0.9432, res.R, 1e-4)
	require.InDelta(t, 0.00143, res.P, 1e-4)
	require.InDelta(t, 0.00754, res.StdErr, 1e-4)
}

func TestDetectRegressionTrendTinyPValue(t *testing.T) {
	// A near-perfect rise: t is about 6000, so p is far below float64 epsilon
	// but must not round to zero.
	res := DetectRegressionTrend(series(0.0, 0.1001, 0.1999, 0.3, 0.4001, 0.4999, 0.6))
	require.Equal(t, Significant, res.Verdict)
	require.Equal(t, Uptrend, res.Direction)
	require.Greater(t, res.P, 0.0)
	require.Less(t, res.P, 1e-15)
	require.Greater(t, res.StdErr, 0.0)
}

func TestDetectRegressionTrendFlat(t *testing.T) {
	res := DetectRegressionTrend(series(0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5))
	require.Equal(t, NotSignificant, res.Verdict)
	require.Equal(t, Downtrend, res.Direction)
	require.Equal(t, 0.0, res.Slope)
	require.Equal(t, 1.0, res.P)
}

func TestRegressionResultRounded(t *testing.T) {
	r := RegressionResult{R: 0.98765, P: 0.0123456, StdErr: 0.000049}.Rounded()
	require.Equal(t, 0.99, r.R)
	require.Equal(t, 0.0123, r.P)
	require.Equal(t, 0.0, r.StdErr)
}
