package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"wellbeing-tracker/internal/config"
	"wellbeing-tracker/internal/csvstore"
	"wellbeing-tracker/internal/database"
	"wellbeing-tracker/internal/logger"
	"wellbeing-tracker/internal/services"
	"wellbeing-tracker/internal/telegram"
	"wellbeing-tracker/internal/utils"
	"wellbeing-tracker/internal/wellbeing"
)

const sessionSweepSchedule = "*/15 * * * *"

// Store is an entry store plus whatever must be released on shutdown.
type Store struct {
	wellbeing.EntryStore
	close func() error
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStore opens the backend named by the config. The CSV file is created
// with its header when missing.
func OpenStore(cfg *config.Config, loc *time.Location, log logger.Logger) (*Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := database.New(cfg.Storage.Path, log)
		if err != nil {
			return nil, err
		}
		repo := database.NewRepository(db, loc)
		if n, err := repo.Count(context.Background()); err == nil {
			log.Infof("📦 %d entries stored", n)
		}
		return &Store{EntryStore: repo, close: db.Close}, nil
	case config.DriverCSV:
		store := csvstore.New(cfg.Storage.Path, loc, log)
		if err := store.Init(); err != nil {
			return nil, err
		}
		return &Store{EntryStore: store}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// NewLogger builds the logger for the configured level.
func NewLogger(cfg *config.Config) logger.Logger {
	level, _ := logger.ParseLevel(cfg.Log.Level)
	return logger.New(level)
}

type Application struct {
	config     *config.Config
	store      *Store
	bot        *telegram.Bot
	services   *services.ServiceManager
	cron       *cron.Cron
	sessionTTL time.Duration
	loc        *time.Location
	logger     logger.Logger
	cancelFunc context.CancelFunc
	ctx        context.Context
}

func New(cfg *config.Config, log logger.Logger) (*Application, error) {
	if err := cfg.ValidateBot(); err != nil {
		return nil, err
	}
	ttl, err := cfg.SessionTTL()
	if err != nil {
		return nil, err
	}
	loc, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	store, err := OpenStore(cfg, loc, log)
	if err != nil {
		return nil, err
	}

	serviceManager := services.NewServiceManager(store, loc, log)
	bot, err := telegram.NewBot(cfg.Telegram.Token, cfg.Telegram.ChatID, serviceManager, log)
	if err != nil {
		store.Close()
		return nil, err
	}

	serviceManager.SetNotificationSender(bot)
	ctx, cancel := context.WithCancel(context.Background())

	app := &Application{
		config:     cfg,
		store:      store,
		bot:        bot,
		services:   serviceManager,
		cron:       cron.New(cron.WithLocation(loc)),
		sessionTTL: ttl,
		loc:        loc,
		logger:     log,
		cancelFunc: cancel,
		ctx:        ctx,
	}

	if err := app.setupCronJobs(); err != nil {
		cancel()
		store.Close()
		return nil, err
	}

	return app, nil
}

func (a *Application) Start() error {
	a.logger.Infof("🚀 Starting application...")

	go a.bot.Start(a.ctx)
	a.cron.Start()

	a.sendWelcomeMessage()

	a.logger.Infof("✅ Application started. Bot: @%s, storage: %s (%s)",
		a.bot.GetUsername(), a.config.Storage.Path, a.config.Storage.Driver)
	return nil
}

func (a *Application) Stop() error {
	a.logger.Infof("🛑 Stopping application...")

	a.cancelFunc()
	<-a.cron.Stop().Done()

	if err := a.store.Close(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}

	a.logger.Infof("✅ Application stopped")
	return nil
}

func (a *Application) setupCronJobs() error {
	_, err := a.cron.AddFunc(sessionSweepSchedule, func() {
		a.services.Survey.Expire(a.sessionTTL)
	})
	if err != nil {
		return fmt.Errorf("schedule session sweep: %w", err)
	}

	chatID := a.config.Telegram.ChatID
	if chatID == 0 {
		a.logger.Warnf("⚠️ TG_CHAT_ID is not set, reminders and digests are disabled")
		return nil
	}

	_, err = a.cron.AddFunc(a.config.Reminder.Schedule, func() {
		a.services.Notification.SendSurveyReminder(chatID)
	})
	if err != nil {
		return fmt.Errorf("schedule reminder %q: %w", a.config.Reminder.Schedule, err)
	}

	_, err = a.cron.AddFunc(a.config.Digest.Schedule, func() {
		a.services.Notification.SendWeeklyDigest(a.ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule digest %q: %w", a.config.Digest.Schedule, err)
	}

	return nil
}

func (a *Application) sendWelcomeMessage() {
	if a.config.Telegram.ChatID == 0 {
		return
	}

	message := "🌱 Well-being tracker is running.\n\n" +
		"Today: " + utils.FormatDate(time.Now().In(a.loc)) + "\n\n" +
		"Send /start for today's check-in or /help for all commands."

	if err := a.bot.SendMessage(message); err != nil {
		a.logger.Warnf("⚠️ Welcome message not sent: %v", err)
	}
}
