// internal/app/notifier.go
package app

import (
	domainTelegram "homework_notification_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Notifier delivers a user-facing message to the configured destination.
// Delivery failures must never propagate to the caller.
type Notifier interface {
	Notify(text string)
}

// TelegramNotifier sends every message to a single fixed chat.
type TelegramNotifier struct {
	client domainTelegram.Client
	chatID int64
	logger *logrus.Entry
}

func NewTelegramNotifier(client domainTelegram.Client, chatID int64, logger *logrus.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		client: client,
		chatID: chatID,
		logger: logger.WithField("component", "notifier"),
	}
}

// Notify attempts delivery and swallows any failure. A lost notification is
// logged but never aborts the poll loop that requested it.
func (n *TelegramNotifier) Notify(text string) {
	if err := n.client.SendMessage(n.chatID, text, nil); err != nil {
		n.logger.WithError(err).WithField("chat_id", n.chatID).Error("Failed to deliver notification")
		return
	}
	n.logger.WithField("message", text).Debug("Notification delivered")
}
