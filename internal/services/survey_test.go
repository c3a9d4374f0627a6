package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wellbeing-tracker/internal/wellbeing"
)

func newSurvey(store wellbeing.EntryStore, now time.Time) *SurveyService {
	s := NewSurveyService(store, time.UTC, silent)
	s.now = func() time.Time { return now }
	return s
}

func TestSurveyFullFlow(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	now := time.Date(2025, 5, 17, 21, 5, 0, 0, time.UTC)
	s := newSurvey(store, now)

	first := s.Start(42)
	require.Contains(t, first, Questions[0])
	require.True(t, s.Active(42))

	reply, err := s.Answer(ctx, 42, "4")
	require.NoError(t, err)
	require.Equal(t, Questions[1], reply.Text)
	require.False(t, reply.Done)

	reply, err = s.Answer(ctx, 42, "2")
	require.NoError(t, err)
	require.Equal(t, Questions[2], reply.Text)

	reply, err = s.Answer(ctx, 42, " 3 ")
	require.NoError(t, err)
	require.True(t, reply.Done)
	require.Equal(t, "Thanks! Your responses were saved.", reply.Text)

	want := wellbeing.Entry{Timestamp: now, Stress: 4, Energy: 2, Productivity: 3}
	require.Equal(t, &want, reply.Entry)
	require.Equal(t, []wellbeing.Entry{want}, store.entries)
	require.False(t, s.Active(42))
}

func TestSurveyInvalidAnswerKeepsQuestion(t *testing.T) {
	ctx := context.Background()
	s := newSurvey(&memStore{}, time.Now())
	s.Start(1)

	for _, bad := range []string{"0", "6", "seven", ""} {
		_, err := s.Answer(ctx, 1, bad)
		require.ErrorIs(t, err, wellbeing.ErrInvalidRating)
	}

	reply, err := s.Answer(ctx, 1, "5")
	require.NoError(t, err)
	require.Equal(t, Questions[1], reply.Text)
}

func TestSurveyWithoutSession(t *testing.T) {
	s := newSurvey(&memStore{}, time.Now())
	_, err := s.Answer(context.Background(), 7, "3")
	require.ErrorIs(t, err, ErrNoSession)
}

func TestSurveyRestartDiscardsAnswers(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	s := newSurvey(store, time.Now())

	s.Start(1)
	_, err := s.Answer(ctx, 1, "1")
	require.NoError(t, err)

	s.Start(1)
	for _, a := range []string{"5", "4", "3"} {
		_, err = s.Answer(ctx, 1, a)
		require.NoError(t, err)
	}
	require.Len(t, store.entries, 1)
	require.Equal(t, wellbeing.Rating(5), store.entries[0].Stress)
}

func TestSurveySessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	s := newSurvey(store, time.Now())

	s.Start(1)
	s.Start(2)
	_, err := s.Answer(ctx, 1, "1")
	require.NoError(t, err)
	reply, err := s.Answer(ctx, 2, "5")
	require.NoError(t, err)
	require.Equal(t, Questions[1], reply.Text)
	require.Empty(t, store.entries)
}

func TestSurveyCancel(t *testing.T) {
	s := newSurvey(&memStore{}, time.Now())
	require.False(t, s.Cancel(3))
	s.Start(3)
	require.True(t, s.Cancel(3))
	require.False(t, s.Active(3))
}

func TestSurveyStoreFailureAllowsRetry(t *testing.T) {
	ctx := context.Background()
	store := &memStore{appendErr: fmt.Errorf("%w: %w", wellbeing.ErrStorageUnavailable, errDisk)}
	s := newSurvey(store, time.Now())

	s.Start(9)
	_, err := s.Answer(ctx, 9, "2")
	require.NoError(t, err)
	_, err = s.Answer(ctx, 9, "2")
	require.NoError(t, err)

	_, err = s.Answer(ctx, 9, "2")
	require.ErrorIs(t, err, wellbeing.ErrStorageUnavailable)
	require.True(t, s.Active(9))

	store.appendErr = nil
	reply, err := s.Answer(ctx, 9, "2")
	require.NoError(t, err)
	require.True(t, reply.Done)
	require.Len(t, store.entries, 1)
}

func TestSurveyExpire(t *testing.T) {
	now := time.Date(2025, 5, 17, 12, 0, 0, 0, time.UTC)
	s := newSurvey(&memStore{}, now.Add(-13*time.Hour))
	s.Start(1)

	s.now = func() time.Time { return now.Add(-time.Hour) }
	s.Start(2)

	s.now = func() time.Time { return now }
	require.Equal(t, 1, s.Expire(12*time.Hour))
	require.False(t, s.Active(1))
	require.True(t, s.Active(2))
	require.Equal(t, 0, s.Expire(12*time.Hour))
}
