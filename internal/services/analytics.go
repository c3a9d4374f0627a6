package services

import (
	"context"
	"io"

	"wellbeing-tracker/internal/chart"
	"wellbeing-tracker/internal/csvstore"
	"wellbeing-tracker/internal/wellbeing"
)

type AnalyticsService struct {
	store wellbeing.EntryStore
}

func NewAnalyticsService(store wellbeing.EntryStore) *AnalyticsService {
	return &AnalyticsService{
		store: store,
	}
}

func (as *AnalyticsService) Daily(ctx context.Context) ([]wellbeing.DailyAggregate, error) {
	entries, err := as.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return wellbeing.Aggregate(entries), nil
}

func (as *AnalyticsService) RecentDaily(ctx context.Context, days int) ([]wellbeing.DailyAggregate, error) {
	daily, err := as.Daily(ctx)
	if err != nil {
		return nil, err
	}
	return wellbeing.Tail(daily, days), nil
}

func (as *AnalyticsService) Scores(ctx context.Context) ([]wellbeing.CompositeScore, error) {
	daily, err := as.Daily(ctx)
	if err != nil {
		return nil, err
	}
	return wellbeing.Scores(daily), nil
}

func (as *AnalyticsService) ShortTrend(ctx context.Context) (wellbeing.Trend, error) {
	scores, err := as.Scores(ctx)
	if err != nil {
		return "", err
	}
	return wellbeing.DetectShortTrend(scores), nil
}

func (as *AnalyticsService) RegressionTrend(ctx context.Context) (wellbeing.RegressionResult, error) {
	scores, err := as.Scores(ctx)
	if err != nil {
		return wellbeing.RegressionResult{}, err
	}
	return wellbeing.DetectRegressionTrend(scores), nil
}

// Chart renders the whole composite history. It returns chart.ErrNoScores
// when nothing has been logged.
func (as *AnalyticsService) Chart(ctx context.Context) ([]byte, error) {
	scores, err := as.Scores(ctx)
	if err != nil {
		return nil, err
	}
	return chart.Render(scores)
}

// Export writes the full log as CSV whatever the backing store is.
func (as *AnalyticsService) Export(ctx context.Context, w io.Writer) error {
	entries, err := as.store.ReadAll(ctx)
	if err != nil {
		return err
	}
	return csvstore.WriteCSV(w, entries)
}

func (as *AnalyticsService) LastEntries(ctx context.Context, n int) ([]wellbeing.Entry, error) {
	entries, err := as.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}
