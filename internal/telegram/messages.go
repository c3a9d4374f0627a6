package telegram

func (b *Bot) replyOrLogError(chatID int64, message string) {
	if err := b.reply(chatID, message); err != nil {
		b.logger.Errorf("❌ Send to chat %d failed: %v", chatID, err)
	}
}
