package app

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

type fakeTelegramClient struct {
	err  error
	sent []string
	chat int64
}

func (f *fakeTelegramClient) SendMessage(recipientChatID int64, text string, _ *telebot.SendOptions) error {
	f.chat = recipientChatID
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

func TestNotify_DeliversToConfiguredChat(t *testing.T) {
	log, _ := test.NewNullLogger()
	client := &fakeTelegramClient{}
	notifier := NewTelegramNotifier(client, 4242, log)

	notifier.Notify("привет")

	assert.Equal(t, int64(4242), client.chat)
	assert.Equal(t, []string{"привет"}, client.sent)
}

func TestNotify_DeliveryFailureIsSwallowedAndLogged(t *testing.T) {
	log, hook := test.NewNullLogger()
	client := &fakeTelegramClient{err: fmt.Errorf("telegram: chat not found")}
	notifier := NewTelegramNotifier(client, 4242, log)

	// Must not panic or propagate anything.
	notifier.Notify("привет")

	assert.Empty(t, client.sent)
	require.NotEmpty(t, hook.Entries)
	last := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, last.Level)
	assert.Contains(t, last.Message, "Failed to deliver notification")
}
