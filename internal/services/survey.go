package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync"

	"wellbeing-tracker/internal/logger"
	"wellbeing-tracker/internal/wellbeing"
)

var ErrNoSession = errors.New("no survey in progress")

var Questions = []string{
	"On a scale from 1 to 5, how stressed did you feel today?",
	"On a scale from 1 to 5, how much energy did you have today?",
	"On a scale from 1 to 5, how productive were you today?",
}

// Session is the in-progress survey of one conversation.
type Session struct {
	ID             string
	ConversationID int64
	Step           int
	Answers        []wellbeing.Rating
	StartedAt      time.Time
	UpdatedAt      time.Time
}

// SurveyReply tells the caller what to say next.
type SurveyReply struct {
	Text  string
	Done  bool
	Entry *wellbeing.Entry
}

type SurveyService struct {
	store    wellbeing.EntryStore
	sessions *xsync.MapOf[string, *Session]
	loc      *time.Location
	now      func() time.Time
	logger   logger.Logger
}

func NewSurveyService(store wellbeing.EntryStore, loc *time.Location, log logger.Logger) *SurveyService {
	return &SurveyService{
		store:    store,
		sessions: xsync.NewMapOf[*Session](),
		loc:      loc,
		now:      time.Now,
		logger:   log,
	}
}

func sessionKey(conversationID int64) string {
	return strconv.FormatInt(conversationID, 10)
}

// Start opens a fresh session, discarding any unfinished one, and returns
// the first question.
func (s *SurveyService) Start(conversationID int64) string {
	now := s.now()
	session := &Session{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Answers:        make([]wellbeing.Rating, 0, len(Questions)),
		StartedAt:      now,
		UpdatedAt:      now,
	}
	s.sessions.Store(sessionKey(conversationID), session)
	s.logger.Debugf("📝 Survey %s started for chat %d", session.ID, conversationID)
	return "Hi! Let's track your day.\n" + Questions[0]
}

// Answer records one reply. An invalid rating keeps the session on the same
// question and returns ErrInvalidRating.
func (s *SurveyService) Answer(ctx context.Context, conversationID int64, text string) (SurveyReply, error) {
	key := sessionKey(conversationID)
	session, ok := s.sessions.Load(key)
	if !ok {
		return SurveyReply{}, ErrNoSession
	}

	rating, err := wellbeing.ParseRating(text)
	if err != nil {
		return SurveyReply{}, err
	}

	// Sessions are replaced, never mutated.
	next := *session
	next.Answers = append(slices.Clone(session.Answers), rating)
	next.Step++
	next.UpdatedAt = s.now()

	if next.Step < len(Questions) {
		s.sessions.Store(key, &next)
		return SurveyReply{Text: Questions[next.Step]}, nil
	}

	entry := wellbeing.Entry{
		Timestamp:    next.UpdatedAt.In(s.loc),
		Stress:       next.Answers[0],
		Energy:       next.Answers[1],
		Productivity: next.Answers[2],
	}
	if err := s.store.Append(ctx, entry); err != nil {
		// The last question stays open so the user can retry.
		return SurveyReply{}, fmt.Errorf("save entry: %w", err)
	}

	s.sessions.Delete(key)
	s.logger.Infof("✅ Survey %s saved for chat %d", session.ID, conversationID)
	return SurveyReply{Text: "Thanks! Your responses were saved.", Done: true, Entry: &entry}, nil
}

// Cancel drops the conversation's session. It reports whether one existed.
func (s *SurveyService) Cancel(conversationID int64) bool {
	_, ok := s.sessions.LoadAndDelete(sessionKey(conversationID))
	return ok
}

func (s *SurveyService) Active(conversationID int64) bool {
	_, ok := s.sessions.Load(sessionKey(conversationID))
	return ok
}

// Expire drops sessions idle for longer than ttl and returns how many.
func (s *SurveyService) Expire(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)
	var stale []string
	s.sessions.Range(func(key string, session *Session) bool {
		if session.UpdatedAt.Before(cutoff) {
			stale = append(stale, key)
		}
		return true
	})
	for _, key := range stale {
		s.sessions.Delete(key)
	}
	if len(stale) > 0 {
		s.logger.Infof("🧹 Expired %d idle surveys", len(stale))
	}
	return len(stale)
}
