package notifier

import (
	"fmt"

	"campusvoice/backend/internal/config"
	"campusvoice/backend/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramAlerter pings the admin team's group chat when a new
// complaint arrives, so triage can start before anyone opens their
// inbox. It mirrors the email fan-out and is just as best-effort.
type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramAlerter connects the bot. Returns nil (no alerter) when
// the token or chat id is not configured.
func NewTelegramAlerter(cfg *config.Config) *TelegramAlerter {
	if cfg.TelegramBotToken == "" || cfg.TelegramChatID == 0 {
		return nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		logger.Warnf("[telegram] bot init failed, alerts disabled: %v", err)
		return nil
	}

	logger.Infof("[telegram] admin alerts enabled as @%s", bot.Self.UserName)
	return &TelegramAlerter{bot: bot, chatID: cfg.TelegramChatID}
}

// AlertNewComplaint posts a short summary to the admin chat. Failures
// are logged only.
func (t *TelegramAlerter) AlertNewComplaint(n *Notification) {
	text := fmt.Sprintf("📋 *New concern*: %s\nFrom: %s\nID: `%s`",
		n.Title, n.StudentName, n.ComplaintID)

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := t.bot.Send(msg); err != nil {
		logger.Errorf("[telegram] alert failed for complaint %s: %v", n.ComplaintID, err)
	}
}
