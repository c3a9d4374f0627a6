package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"wellbeing-tracker/internal/logger"
	"wellbeing-tracker/internal/wellbeing"
)

var silent = logger.New(logger.SILENCE)

type memStore struct {
	mu        sync.Mutex
	entries   []wellbeing.Entry
	appendErr error
	readErr   error
}

func (m *memStore) Append(_ context.Context, e wellbeing.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *memStore) ReadAll(_ context.Context) ([]wellbeing.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	return append([]wellbeing.Entry{}, m.entries...), nil
}

// seed adds one entry per day so that day i has the given ratings.
func (m *memStore) seed(start time.Time, ratings ...[3]int) {
	for i, r := range ratings {
		m.entries = append(m.entries, wellbeing.Entry{
			Timestamp:    start.AddDate(0, 0, i),
			Stress:       wellbeing.Rating(r[0]),
			Energy:       wellbeing.Rating(r[1]),
			Productivity: wellbeing.Rating(r[2]),
		})
	}
}

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) SendMessage(text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

var errDisk = errors.New("disk full")
