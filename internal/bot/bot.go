// Package bot wraps the Telegram API client. It knows how to send and edit
// messages and how to turn a button column into an inline keyboard; all
// routing decisions live elsewhere.
package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"staffbot/internal/format"
)

type Bot struct {
	API *tgbotapi.BotAPI
	log *zap.Logger
}

func New(token string, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	log.Info("authorized on account", zap.String("username", api.Self.UserName))

	return &Bot{API: api, log: log}, nil
}

// SendMessage posts a new message and returns its message id, needed for
// later in-place edits.
func (b *Bot) SendMessage(chatID int64, text string, buttons []format.Button) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	if len(buttons) > 0 {
		msg.ReplyMarkup = Keyboard(buttons)
	}

	sent, err := b.API.Send(msg)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

// EditMessage rewrites an existing message in place so each chat keeps a
// single evolving menu message instead of a growing transcript.
func (b *Bot) EditMessage(chatID int64, messageID int, text string, buttons []format.Button) error {
	msg := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if len(buttons) > 0 {
		markup := Keyboard(buttons)
		msg.ReplyMarkup = &markup
	}

	_, err := b.API.Send(msg)
	return err
}

// AnswerCallbackQuery acknowledges a button press so the client stops showing
// its progress spinner.
func (b *Bot) AnswerCallbackQuery(callbackID, text string) error {
	callback := tgbotapi.NewCallback(callbackID, text)
	_, err := b.API.Request(callback)
	return err
}

// Keyboard lays buttons out one per row.
func Keyboard(buttons []format.Button) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, btn := range buttons {
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.Action),
		})
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
