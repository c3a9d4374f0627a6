package telegram

import (
	"bytes"
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"wellbeing-tracker/internal/chart"
	"wellbeing-tracker/internal/report"
	"wellbeing-tracker/internal/services"
	"wellbeing-tracker/internal/wellbeing"
)

// handlers.go - bot command handlers

const (
	exportFileName = "mood_log.csv"
	chartFileName  = "wellbeing.png"

	msgRatingPrompt = "Please enter a number from 1 to 5."
	msgNoSession    = "Send /start to begin today's check-in."
	msgSaveFailed   = "❌ Could not save your answers. Send your last answer again to retry."
	msgFailed       = "❌ Something went wrong. Please try again later."
)

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	b.replyOrLogError(msg.Chat.ID, b.services.Survey.Start(msg.Chat.ID))
}

func (b *Bot) handleAnswer(ctx context.Context, msg *tgbotapi.Message) {
	reply, err := b.services.Survey.Answer(ctx, msg.Chat.ID, msg.Text)
	switch {
	case errors.Is(err, services.ErrNoSession):
		b.replyOrLogError(msg.Chat.ID, msgNoSession)
	case errors.Is(err, wellbeing.ErrInvalidRating):
		b.replyOrLogError(msg.Chat.ID, msgRatingPrompt)
	case err != nil:
		b.logger.Errorf("❌ Entry not saved: %v", err)
		b.replyOrLogError(msg.Chat.ID, msgSaveFailed)
	default:
		b.replyOrLogError(msg.Chat.ID, reply.Text)
	}
}

func (b *Bot) handleCancel(ctx context.Context, msg *tgbotapi.Message) {
	if b.services.Survey.Cancel(msg.Chat.ID) {
		b.replyOrLogError(msg.Chat.ID, "🛑 Check-in cancelled. Nothing was saved.")
		return
	}
	b.replyOrLogError(msg.Chat.ID, "Nothing to cancel.")
}

func (b *Bot) handleStats(ctx context.Context, msg *tgbotapi.Message) {
	daily, err := b.services.Analytics.RecentDaily(ctx, report.StatsDays)
	if err != nil {
		b.replyError(msg.Chat.ID, "stats", err)
		return
	}
	b.replyOrLogError(msg.Chat.ID, report.Stats(daily))
}

func (b *Bot) handleTrend(ctx context.Context, msg *tgbotapi.Message) {
	trend, err := b.services.Analytics.ShortTrend(ctx)
	if err != nil {
		b.replyError(msg.Chat.ID, "trend", err)
		return
	}
	b.logger.Debugf("📈 Short trend: %s", trend)
	b.replyOrLogError(msg.Chat.ID, report.ShortTrend(trend))
}

func (b *Bot) handleRegression(ctx context.Context, msg *tgbotapi.Message) {
	res, err := b.services.Analytics.RegressionTrend(ctx)
	if err != nil {
		b.replyError(msg.Chat.ID, "regression", err)
		return
	}
	b.logger.Debugf("📈 Regression: %+v", res)
	b.replyOrLogError(msg.Chat.ID, report.Regression(res))
}

func (b *Bot) handlePlot(ctx context.Context, msg *tgbotapi.Message) {
	png, err := b.services.Analytics.Chart(ctx)
	if errors.Is(err, chart.ErrNoScores) {
		b.replyOrLogError(msg.Chat.ID, report.NoData)
		return
	}
	if err != nil {
		b.replyError(msg.Chat.ID, "plot", err)
		return
	}

	photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{Name: chartFileName, Bytes: png})
	photo.Caption = "Here’s your daily well-being over time!"
	if _, err := b.bot.Send(photo); err != nil {
		b.logger.Errorf("❌ Chart not sent: %v", err)
		return
	}
	b.logger.Infof("✅ Chart sent to chat %d", msg.Chat.ID)
}

func (b *Bot) handleInfo(ctx context.Context, msg *tgbotapi.Message) {
	var buf bytes.Buffer
	if err := b.services.Analytics.Export(ctx, &buf); err != nil {
		b.replyError(msg.Chat.ID, "info", err)
		return
	}

	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{Name: exportFileName, Bytes: buf.Bytes()})
	doc.Caption = "Here’s your full mood log CSV."
	if _, err := b.bot.Send(doc); err != nil {
		b.logger.Errorf("❌ Log export not sent: %v", err)
		return
	}

	entries, err := b.services.Analytics.LastEntries(ctx, report.PreviewLen)
	if err != nil {
		b.replyError(msg.Chat.ID, "info", err)
		return
	}
	b.replyOrLogError(msg.Chat.ID, report.Preview(entries))
}

func (b *Bot) handleHelp(ctx context.Context, msg *tgbotapi.Message) {
	name := ""
	if msg.From != nil {
		name = msg.From.FirstName
	}
	b.replyOrLogError(msg.Chat.ID, report.Help(name))
}

// replyError maps a read failure to user text. A missing log is expected
// before the first check-in.
func (b *Bot) replyError(chatID int64, command string, err error) {
	if errors.Is(err, wellbeing.ErrStorageUnavailable) {
		b.logger.Warnf("⚠️ /%s: %v", command, err)
		b.replyOrLogError(chatID, report.NoData)
		return
	}
	b.logger.Errorf("❌ /%s failed: %v", command, err)
	b.replyOrLogError(chatID, msgFailed)
}
