package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newNotifications(store *memStore, sender *fakeSender) *NotificationService {
	sm := NewServiceManager(store, day0.Location(), silent)
	sm.SetNotificationSender(sender)
	return sm.Notification
}

func TestSendSurveyReminder(t *testing.T) {
	sender := &fakeSender{}
	ns := newNotifications(&memStore{}, sender)

	ns.SendSurveyReminder(5)
	require.Equal(t, []string{ReminderText}, sender.sent)
}

func TestSendSurveyReminderSkipsActiveSurvey(t *testing.T) {
	sender := &fakeSender{}
	ns := newNotifications(&memStore{}, sender)

	ns.survey.Start(5)
	ns.SendSurveyReminder(5)
	require.Empty(t, sender.sent)
}

func TestSendWeeklyDigest(t *testing.T) {
	store := &memStore{}
	store.seed(day0, [3]int{3, 3, 3}, [3]int{2, 4, 4}, [3]int{1, 5, 5}, [3]int{1, 5, 5})
	sender := &fakeSender{}
	ns := newNotifications(store, sender)

	ns.SendWeeklyDigest(context.Background())
	require.Len(t, sender.sent, 1)
	require.Contains(t, sender.sent[0], "Weekly well-being digest")
	require.Contains(t, sender.sent[0], "need at least 7 days")
}

func TestSendWeeklyDigestWithoutData(t *testing.T) {
	sender := &fakeSender{}
	ns := newNotifications(&memStore{}, sender)

	ns.SendWeeklyDigest(context.Background())
	require.Empty(t, sender.sent)
}

func TestSendFailuresAreLogged(t *testing.T) {
	store := &memStore{}
	store.seed(day0, [3]int{3, 3, 3})
	sender := &fakeSender{err: errDisk}
	ns := newNotifications(store, sender)

	ns.SendSurveyReminder(1)
	ns.SendWeeklyDigest(context.Background())
	require.Empty(t, sender.sent)
}
