package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"wellbeing-tracker/internal/logger"
	"wellbeing-tracker/internal/services"
)

const handlerTimeout = 30 * time.Second

// api is the part of tgbotapi.BotAPI the bot uses.
type api interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type handlerFunc func(context.Context, *tgbotapi.Message)

type Bot struct {
	bot      api
	username string
	chatID   int64
	services *services.ServiceManager
	handlers map[string]handlerFunc
	logger   logger.Logger
}

// NewBot connects to Telegram. A zero chatID serves every chat and disables
// messages that are not replies.
func NewBot(token string, chatID int64, serviceManager *services.ServiceManager, log logger.Logger) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	bot := newBot(botAPI, botAPI.Self.UserName, chatID, serviceManager, log)
	log.Infof("🤖 Bot initialized: %s", botAPI.Self.UserName)
	return bot, nil
}

func newBot(botAPI api, username string, chatID int64, serviceManager *services.ServiceManager, log logger.Logger) *Bot {
	bot := &Bot{
		bot:      botAPI,
		username: username,
		chatID:   chatID,
		services: serviceManager,
		handlers: make(map[string]handlerFunc),
		logger:   log,
	}
	bot.registerHandlers()
	return bot
}

func (b *Bot) registerHandlers() {
	b.handlers["/start"] = b.handleStart
	b.handlers["/stats"] = b.handleStats
	b.handlers["/trend"] = b.handleTrend
	b.handlers["/regression"] = b.handleRegression
	b.handlers["/plot"] = b.handlePlot
	b.handlers["/info"] = b.handleInfo
	b.handlers["/help"] = b.handleHelp
	b.handlers["/cancel"] = b.handleCancel
}

// SendMessage sends text to the configured chat.
func (b *Bot) SendMessage(text string) error {
	if b.chatID == 0 {
		return fmt.Errorf("no chat configured")
	}
	return b.reply(b.chatID, text)
}

func (b *Bot) reply(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.bot.Send(msg)
	return err
}

func (b *Bot) GetUsername() string {
	return b.username
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.bot.GetUpdatesChan(u)
	defer b.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.Chat == nil {
		return
	}

	if b.chatID != 0 && update.Message.Chat.ID != b.chatID {
		b.replyOrLogError(update.Message.Chat.ID, "⛔ Access denied")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, handlerTimeout)
	defer cancel()
	b.handleMessage(ctx, update.Message)
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	if !strings.HasPrefix(text, "/") {
		b.handleAnswer(ctx, msg)
		return
	}

	command := strings.Fields(text)[0]
	if at := strings.Index(command, "@"); at >= 0 {
		if !strings.EqualFold(command[at+1:], b.username) {
			return
		}
		command = command[:at]
	}

	if handler, exists := b.handlers[strings.ToLower(command)]; exists {
		handler(ctx, msg)
	} else {
		b.replyOrLogError(msg.Chat.ID, "❌ Unknown command. Use /help")
	}
}
