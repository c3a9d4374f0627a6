// Package report renders pipeline results as the plain-text messages the
// bot sends and the CLI prints.
package report

import (
	"fmt"
	"strings"

	"wellbeing-tracker/internal/utils"
	"wellbeing-tracker/internal/wellbeing"
)

const (
	NoData     = "📭 No data yet. Send /start to log your first day."
	StatsDays  = 7
	PreviewLen = 10
)

func Stats(daily []wellbeing.DailyAggregate) string {
	if len(daily) == 0 {
		return NoData
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 Daily Averages (Last %d Days):\n", StatsDays))
	for _, d := range wellbeing.Tail(daily, StatsDays) {
		b.WriteString(fmt.Sprintf("%s: %s %s: %.2f, %s %s: %.2f, %s %s: %.2f\n",
			utils.FormatDate(d.Date),
			utils.GetMetricEmoji("stress"), utils.GetMetricName("stress"), d.StressMean,
			utils.GetMetricEmoji("energy"), utils.GetMetricName("energy"), d.EnergyMean,
			utils.GetMetricEmoji("productivity"), utils.GetMetricName("productivity"), d.ProductivityMean,
		))
	}
	return b.String()
}

func ShortTrend(t wellbeing.Trend) string {
	switch t {
	case wellbeing.Uptrend:
		return "📈 Uptrend detected in the last 3 days."
	case wellbeing.Downtrend:
		return "📉 Downtrend detected in the last 3 days."
	case wellbeing.NoTrend:
		return "🔄 No clear trend in the last 3 days."
	default:
		return fmt.Sprintf("Not enough data to detect a trend (need at least %d days).", wellbeing.ShortTrendMinDays)
	}
}

func Regression(res wellbeing.RegressionResult) string {
	if res.Verdict == wellbeing.RegressionUnavailable {
		return fmt.Sprintf("Not enough data to do a regression test (need at least %d days).", wellbeing.RegressionWindow)
	}

	r := res.Rounded()
	stats := fmt.Sprintf("r_value=%g, p_value=%g, std_err=%g", r.R, r.P, r.StdErr)
	if res.Verdict == wellbeing.NotSignificant {
		return fmt.Sprintf("🔄 No significant trend over the last %d days\n %s", wellbeing.RegressionWindow, stats)
	}
	if res.Direction == wellbeing.Uptrend {
		return "📈 Significant uptrend\n " + stats
	}
	return "📉 Significant downtrend\n " + stats
}

// Preview lists the last PreviewLen entries.
func Preview(entries []wellbeing.Entry) string {
	if len(entries) == 0 {
		return NoData
	}
	if len(entries) > PreviewLen {
		entries = entries[len(entries)-PreviewLen:]
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📋 Last %d entries:\n", PreviewLen))
	b.WriteString("timestamp          stress energy productivity\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%-18s %6d %6d %12d\n",
			utils.FormatTimestamp(e.Timestamp), e.Stress, e.Energy, e.Productivity))
	}
	return b.String()
}

// Digest combines the stats and both trend verdicts into one message.
func Digest(daily []wellbeing.DailyAggregate) string {
	if len(daily) == 0 {
		return NoData
	}
	scores := wellbeing.Scores(daily)
	return strings.Join([]string{
		"🗓 Weekly well-being digest",
		Stats(daily),
		ShortTrend(wellbeing.DetectShortTrend(scores)),
		Regression(wellbeing.DetectRegressionTrend(scores)),
	}, "\n\n")
}

func Help(name string) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf("Hi, %s! 🤖\n\n", name) +
		"I’m your Personal Well-Being Tracker Bot. Here’s what I can do:\n\n" +
		"• /start  — Ask you 3 quick daily questions (stress, energy, productivity) and save your answers.\n" +
		"• /stats  — Show your daily average for each metric over the last 7 days.\n" +
		"• /trend  — Tell you if your composite well-being score is trending up, down, or unclear over the last 3 days.\n" +
		"• /plot   — Send you a time-series chart of your normalized composite score (0–1 scale).\n" +
		"• /regression   — Regression-based trend test over last 7 days.\n" +
		"• /info   — Download your full mood log CSV and preview the last 10 entries.\n" +
		"• /cancel — Stop the current check-in without saving.\n" +
		"• /help   — Display this message again.\n\n" +
		"Use these commands every day to track how your stress, energy, and productivity\n" +
		"change over time—and stay on top of your well-being! 🌟"
}
