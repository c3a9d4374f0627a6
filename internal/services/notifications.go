package services

import (
	"context"
	"errors"
	"time"

	"wellbeing-tracker/internal/logger"
	"wellbeing-tracker/internal/report"
	"wellbeing-tracker/internal/wellbeing"
)

// NotificationSender delivers text to the configured chat.
type NotificationSender interface {
	SendMessage(text string) error
}

const ReminderText = "📝 Time for your daily check-in! Send /start to answer three quick questions."

type NotificationService struct {
	sender    NotificationSender
	analytics *AnalyticsService
	survey    *SurveyService
	logger    logger.Logger
}

func NewNotificationService(sender NotificationSender, analytics *AnalyticsService, survey *SurveyService, log logger.Logger) *NotificationService {
	return &NotificationService{
		sender:    sender,
		analytics: analytics,
		survey:    survey,
		logger:    log,
	}
}

// SendSurveyReminder nudges the user to log the day.
func (ns *NotificationService) SendSurveyReminder(chatID int64) {
	if ns.survey.Active(chatID) {
		ns.logger.Debugf("🔔 Survey already in progress, reminder skipped")
		return
	}
	if err := ns.sender.SendMessage(ReminderText); err != nil {
		ns.logger.Errorf("❌ Reminder not sent: %v", err)
		return
	}
	ns.logger.Infof("🔔 Reminder sent")
}

// SendWeeklyDigest sends stats and both trend verdicts.
func (ns *NotificationService) SendWeeklyDigest(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	daily, err := ns.analytics.Daily(ctx)
	if err != nil && !errors.Is(err, wellbeing.ErrStorageUnavailable) {
		ns.logger.Errorf("⚠️ Digest data unavailable: %v", err)
		return
	}
	if len(daily) == 0 {
		ns.logger.Infof("📭 No entries yet, digest skipped")
		return
	}

	if err := ns.sender.SendMessage(report.Digest(daily)); err != nil {
		ns.logger.Errorf("❌ Digest not sent: %v", err)
		return
	}
	ns.logger.Infof("📨 Weekly digest sent")
}
