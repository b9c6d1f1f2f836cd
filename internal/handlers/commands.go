package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) HandleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		h.handleStart(msg)
	case "cancel":
		h.handleCancel(msg)
	}
}

func (h *Handler) handleStart(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	h.sendWith(chatID, fmt.Sprintf(textGreeting, msg.From.FirstName), mainMenuKeyboard())
	h.sendWith(chatID, textSupportHint, supportKeyboard())
}

func (h *Handler) handleCancel(msg *tgbotapi.Message) {
	h.Sessions.Clear(msg.From.ID, msg.Chat.ID)
	h.sendWith(msg.Chat.ID, textCancelled, mainMenuKeyboard())
}
