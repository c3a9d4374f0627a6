package utils

// Labels and emoji for the three survey metrics.
func GetMetricName(metric string) string {
	switch metric {
	case "stress":
		return "Stress"
	case "energy":
		return "Energy"
	case "productivity":
		return "Productivity"
	default:
		return metric
	}
}

func GetMetricEmoji(metric string) string {
	switch metric {
	case "stress":
		return "😰"
	case "energy":
		return "⚡"
	case "productivity":
		return "🎯"
	default:
		return "📌"
	}
}
