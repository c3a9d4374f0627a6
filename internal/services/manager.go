package services

import (
	"time"

	"wellbeing-tracker/internal/logger"
	"wellbeing-tracker/internal/wellbeing"
)

type ServiceManager struct {
	Notification *NotificationService
	Analytics    *AnalyticsService
	Survey       *SurveyService
	logger       logger.Logger
}

func NewServiceManager(store wellbeing.EntryStore, loc *time.Location, log logger.Logger) *ServiceManager {
	return &ServiceManager{
		Notification: nil,
		Analytics:    NewAnalyticsService(store),
		Survey:       NewSurveyService(store, loc, log),
		logger:       log,
	}
}

func (sm *ServiceManager) SetNotificationSender(sender NotificationSender) {
	sm.Notification = NewNotificationService(sender, sm.Analytics, sm.Survey, sm.logger)
}
