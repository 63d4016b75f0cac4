// Package handlers connects Telegram updates to the router: it extracts chat
// identity and callback data from an update, asks the router for a render,
// and pushes it back through the bot.
package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"staffbot/internal/bot"
	"staffbot/internal/router"
	"staffbot/internal/session"
	"staffbot/pkg/logger"
)

type Handler struct {
	bot      *bot.Bot
	router   *router.Router
	sessions *session.Store
	log      *zap.Logger
}

func New(b *bot.Bot, r *router.Router, sessions *session.Store, log *zap.Logger) *Handler {
	return &Handler{bot: b, router: r, sessions: sessions, log: log}
}

// HandleStart answers the /start command with the caller's main menu and
// records the menu message so later presses can edit it in place.
func (h *Handler) HandleStart(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	identity := message.From.ID

	render, role := h.router.OnStart(ctx, identity)
	messageID, err := h.bot.SendMessage(chatID, render.Text, render.Buttons)
	if err != nil {
		h.log.Error("send welcome failed",
			zap.Int64(logger.FieldChatID, chatID),
			zap.Error(err))
		return
	}

	h.sessions.Update(chatID, messageID, session.Patch{Role: role})
}

// HandleCallbackQuery routes one button press. The pressed message is edited
// in place; if editing fails the render is sent as a fresh message so the
// user is never left without a menu.
func (h *Handler) HandleCallbackQuery(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	messageID := callback.Message.MessageID
	identity := callback.From.ID

	render := h.router.OnAction(ctx, chatID, messageID, identity, callback.Data)

	if err := h.bot.EditMessage(chatID, messageID, render.Text, render.Buttons); err != nil {
		h.log.Warn("edit failed, sending new message",
			zap.Int64(logger.FieldChatID, chatID),
			zap.Int(logger.FieldMessageID, messageID),
			zap.Error(err))
		if newID, sendErr := h.bot.SendMessage(chatID, render.Text, render.Buttons); sendErr != nil {
			h.log.Error("send fallback failed",
				zap.Int64(logger.FieldChatID, chatID),
				zap.Error(sendErr))
		} else {
			h.sessions.Update(chatID, newID, session.Patch{})
		}
	}

	if err := h.bot.AnswerCallbackQuery(callback.ID, ""); err != nil {
		h.log.Warn("answer callback failed",
			zap.Int64(logger.FieldChatID, chatID),
			zap.Error(err))
	}
}
