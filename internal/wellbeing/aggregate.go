package wellbeing

import (
	"sort"
	"time"
)

// DailyAggregate holds the per-date mean of each metric.
type DailyAggregate struct {
	Date             time.Time `json:"date"`
	StressMean       float64   `json:"stress_mean"`
	EnergyMean       float64   `json:"energy_mean"`
	ProductivityMean float64   `json:"productivity_mean"`
	Entries          int       `json:"entries"`
}

// Aggregate groups entries by the calendar date of their timestamp (in the
// timestamp's own location) and returns one aggregate per date, ascending.
func Aggregate(entries []Entry) []DailyAggregate {
	type acc struct {
		date                         time.Time
		stress, energy, productivity int
		n                            int
	}

	buckets := make(map[string]*acc)
	for _, e := range entries {
		y, m, d := e.Timestamp.Date()
		key := e.Timestamp.Format("2006-01-02")
		a, ok := buckets[key]
		if !ok {
			a = &acc{date: time.Date(y, m, d, 0, 0, 0, 0, e.Timestamp.Location())}
			buckets[key] = a
		}
		a.stress += int(e.Stress)
		a.energy += int(e.Energy)
		a.productivity += int(e.Productivity)
		a.n++
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	daily := make([]DailyAggregate, 0, len(keys))
	for _, key := range keys {
		a := buckets[key]
		n := float64(a.n)
		daily = append(daily, DailyAggregate{
			Date:             a.date,
			StressMean:       float64(a.stress) / n,
			EnergyMean:       float64(a.energy) / n,
			ProductivityMean: float64(a.productivity) / n,
			Entries:          a.n,
		})
	}
	return daily
}

// Tail returns the last n aggregates, or all of them if there are fewer.
func Tail(daily []DailyAggregate, n int) []DailyAggregate {
	if n <= 0 || len(daily) <= n {
		return daily
	}
	return daily[len(daily)-n:]
}
