package handlers

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"telegram-deadline-bot/internal/scheduler"
	"telegram-deadline-bot/internal/session"
	"telegram-deadline-bot/internal/storage"
)

// displayLayout is how due timestamps are shown to the user.
const displayLayout = "02.01.2006 15:04"

// Sender is the slice of the Telegram API the handlers need. Satisfied by
// *tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Scheduler arms and disarms the notification timers that accompany a
// deadline record.
type Scheduler interface {
	Schedule(n scheduler.Notification, fireAt time.Time)
	CancelFor(deadlineID int64)
}

type Handler struct {
	Bot      Sender
	DB       storage.Storage
	Sessions *session.Manager
	Sched    Scheduler
	Loc      *time.Location
	Logger   *zap.Logger

	clock func() time.Time
}

func New(bot Sender, db storage.Storage, sessions *session.Manager, sched Scheduler, loc *time.Location, logger *zap.Logger) *Handler {
	return &Handler{
		Bot:      bot,
		DB:       db,
		Sessions: sessions,
		Sched:    sched,
		Loc:      loc,
		Logger:   logger,
		clock:    time.Now,
	}
}

// HandleUpdate routes one incoming update to the message or callback path.
func (h *Handler) HandleUpdate(upd tgbotapi.Update) {
	switch {
	case upd.Message != nil:
		h.HandleMessage(upd.Message)
	case upd.CallbackQuery != nil:
		h.HandleCallback(upd.CallbackQuery)
	}
}

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	if msg.IsCommand() {
		h.HandleCommand(msg)
		return
	}
	h.HandleText(msg)
}

// NotifyDeadline delivers a scheduled notification. It implements
// scheduler.Notifier; failures are logged and swallowed, never retried.
func (h *Handler) NotifyDeadline(n scheduler.Notification) {
	var text string
	if n.IsDue {
		text = fmt.Sprintf("⏰ Deadline %q is due now! Date: %s", n.Title, n.DueAt.Format(displayLayout))
	} else {
		text = fmt.Sprintf("Reminder: %q is coming up! Date: %s", n.Title, n.DueAt.Format(displayLayout))
	}

	var err error
	if n.PhotoFileID != "" {
		photo := tgbotapi.NewPhoto(n.UserID, tgbotapi.FileID(n.PhotoFileID))
		photo.Caption = text
		_, err = h.Bot.Send(photo)
	} else {
		_, err = h.Bot.Send(tgbotapi.NewMessage(n.UserID, text))
	}
	if err != nil {
		h.Logger.Error("notification delivery failed",
			zap.Error(err),
			zap.Int64("user_id", n.UserID),
			zap.Int64("deadline_id", n.DeadlineID))
		return
	}
	h.Logger.Info("notification delivered",
		zap.Int64("user_id", n.UserID),
		zap.Int64("deadline_id", n.DeadlineID),
		zap.Bool("is_due", n.IsDue))
}

func (h *Handler) now() time.Time {
	return h.clock().In(h.Loc)
}

func (h *Handler) send(chatID int64, text string) {
	h.sendWith(chatID, text, nil)
}

func (h *Handler) sendWith(chatID int64, text string, keyboard any) {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	if _, err := h.Bot.Send(msg); err != nil {
		h.Logger.Error("send message failed", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}

func (h *Handler) edit(chatID int64, messageID int, text string) {
	if _, err := h.Bot.Request(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		h.Logger.Error("edit message failed", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}

func (h *Handler) editWithKeyboard(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ReplyMarkup = &kb
	if _, err := h.Bot.Request(edit); err != nil {
		h.Logger.Error("edit message failed", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}
