package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wellbeing-tracker/internal/wellbeing"
)

func days(n int) []wellbeing.DailyAggregate {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	daily := make([]wellbeing.DailyAggregate, n)
	for i := range daily {
		daily[i] = wellbeing.DailyAggregate{
			Date:             start.AddDate(0, 0, i),
			StressMean:       3,
			EnergyMean:       1 + float64(i%5),
			ProductivityMean: 2.5,
		}
	}
	return daily
}

func TestStats(t *testing.T) {
	require.Equal(t, NoData, Stats(nil))

	out := Stats(days(10))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+StatsDays)
	require.Equal(t, "📊 Daily Averages (Last 7 Days):", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "2025-05-04: "))
	require.Contains(t, lines[1], "Stress: 3.00")
	require.Contains(t, lines[1], "Productivity: 2.50")
	require.True(t, strings.HasPrefix(lines[7], "2025-05-10: "))
}

func TestShortTrend(t *testing.T) {
	require.Contains(t, ShortTrend(wellbeing.Uptrend), "Uptrend")
	require.Contains(t, ShortTrend(wellbeing.Downtrend), "Downtrend")
	require.Contains(t, ShortTrend(wellbeing.NoTrend), "No clear trend")
	require.Contains(t, ShortTrend(wellbeing.InsufficientData), "need at least 4 days")
}

func TestRegression(t *testing.T) {
	require.Contains(t, Regression(wellbeing.RegressionResult{Verdict: wellbeing.RegressionUnavailable}), "need at least 7 days")

	up := Regression(wellbeing.RegressionResult{
		Verdict: wellbeing.Significant, Direction: wellbeing.Uptrend,
		R: 0.98765, P: 0.001234, StdErr: 0.012345,
	})
	require.Equal(t, "📈 Significant uptrend\n r_value=0.99, p_value=0.0012, std_err=0.0123", up)

	down := Regression(wellbeing.RegressionResult{Verdict: wellbeing.Significant, Direction: wellbeing.Downtrend, R: -0.9})
	require.True(t, strings.HasPrefix(down, "📉 Significant downtrend"))

	flat := Regression(wellbeing.RegressionResult{Verdict: wellbeing.NotSignificant, R: 0.1, P: 0.8154})
	require.True(t, strings.HasPrefix(flat, "🔄 No significant trend over the last 7 days"))
	require.Contains(t, flat, "p_value=0.8154")
}

func TestPreview(t *testing.T) {
	require.Equal(t, NoData, Preview(nil))

	var entries []wellbeing.Entry
	start := time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		entries = append(entries, wellbeing.Entry{Timestamp: start.AddDate(0, 0, i), Stress: 1, Energy: 2, Productivity: 3})
	}

	out := Preview(entries)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2+PreviewLen)
	require.True(t, strings.HasPrefix(lines[2], "2025-05-03 20:00"))
	require.True(t, strings.HasPrefix(lines[len(lines)-1], "2025-05-12 20:00"))
}

func TestDigest(t *testing.T) {
	require.Equal(t, NoData, Digest(nil))

	out := Digest(days(8))
	require.Contains(t, out, "Weekly well-being digest")
	require.Contains(t, out, "Daily Averages")
	require.Contains(t, out, "last 3 days")
	require.NotContains(t, out, "need at least")
}

func TestHelp(t *testing.T) {
	require.True(t, strings.HasPrefix(Help("Ada"), "Hi, Ada!"))
	require.True(t, strings.HasPrefix(Help(""), "Hi, there!"))
	require.Contains(t, Help(""), "/regression")
}
