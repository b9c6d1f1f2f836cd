package handlers

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"telegram-deadline-bot/internal/models"
	"telegram-deadline-bot/internal/scheduler"
	"telegram-deadline-bot/internal/session"
)

// HandleText dispatches a plain (non-command) message by the current
// conversation state. Re-prompts keep the state unchanged, so every step
// is re-entrant on bad input.
func (h *Handler) HandleText(msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	switch h.Sessions.State(userID, chatID) {
	case models.StateAwaitingTitle:
		h.handleTitleStep(msg)
	case models.StateAwaitingDescription:
		h.handleDescriptionStep(msg)
	case models.StateAwaitingPhoto:
		h.handlePhotoStep(msg)
	case models.StateAwaitingReminder:
		h.handleReminderStep(msg)
	case models.StateAwaitingStatusSelection:
		h.handleStatusSelection(msg)
	case models.StateAwaitingStatusAction:
		h.handleStatusAction(msg)
	case models.StateAwaitingDeleteSelection:
		h.handleDeleteSelection(msg)
	default:
		h.handleMenu(msg)
	}
}

// handleMenu reacts to the main-menu buttons. Anything else outside a
// conversation is ignored.
func (h *Handler) handleMenu(msg *tgbotapi.Message) {
	switch msg.Text {
	case btnAddDeadline:
		h.startAddFlow(msg)
	case btnDeleteDeadline:
		h.startDeleteFlow(msg)
	case btnViewDeadlines:
		h.startViewFlow(msg)
	}
}

// ---- add-deadline flow ------------------------------------------------

func (h *Handler) startAddFlow(msg *tgbotapi.Message) {
	h.Sessions.Update(msg.From.ID, msg.Chat.ID, func(s *session.Session) {
		s.State = models.StateAwaitingTitle
		s.Draft = models.Draft{}
	})
	prompt := tgbotapi.NewMessage(msg.Chat.ID, textAskTitle)
	prompt.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if _, err := h.Bot.Send(prompt); err != nil {
		h.Logger.Error("send message failed", zap.Error(err), zap.Int64("chat_id", msg.Chat.ID))
	}
}

func (h *Handler) handleTitleStep(msg *tgbotapi.Message) {
	title := strings.TrimSpace(msg.Text)
	if title == "" {
		h.send(msg.Chat.ID, textEmptyTitle)
		return
	}
	h.Sessions.Update(msg.From.ID, msg.Chat.ID, func(s *session.Session) {
		s.Draft.Title = title
		s.State = models.StateAwaitingDate
	})
	now := h.now()
	h.sendWith(msg.Chat.ID, textPickDate, calendarKeyboard(now.Year(), now.Month()))
}

func (h *Handler) handleDescriptionStep(msg *tgbotapi.Message) {
	description := strings.TrimSpace(msg.Text)
	if strings.EqualFold(description, btnSkip) {
		description = ""
	}
	h.Sessions.Update(msg.From.ID, msg.Chat.ID, func(s *session.Session) {
		s.Draft.Description = description
		s.State = models.StateAwaitingPhoto
	})
	h.sendWith(msg.Chat.ID, textAskPhoto, skipKeyboard(cbSkipPhoto))
}

func (h *Handler) handlePhotoStep(msg *tgbotapi.Message) {
	if len(msg.Photo) == 0 {
		h.sendWith(msg.Chat.ID, textNeedPhoto, skipKeyboard(cbSkipPhoto))
		return
	}
	// Telegram sends size variants smallest first; take the largest.
	photo := msg.Photo[len(msg.Photo)-1]
	h.Sessions.Update(msg.From.ID, msg.Chat.ID, func(s *session.Session) {
		s.Draft.PhotoFileID = photo.FileID
		s.State = models.StateAwaitingReminder
	})
	h.sendWith(msg.Chat.ID, textPhotoSaved, reminderKeyboard())
}

func (h *Handler) handleReminderStep(msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID
	label := msg.Text
	if _, ok := models.ReminderOffsets[label]; !ok && label != models.ReminderNone {
		h.sendWith(chatID, textReminderInvalid, reminderKeyboard())
		return
	}

	draft := h.Sessions.Get(userID, chatID).Draft
	record := &models.Deadline{
		UserID:      userID,
		Title:       draft.Title,
		DueAt:       draft.DueDate,
		Description: draft.Description,
		Reminder:    label,
		PhotoFileID: draft.PhotoFileID,
	}
	id, err := h.DB.CreateDeadline(record)
	if err != nil {
		h.Logger.Error("create deadline failed", zap.Error(err), zap.Int64("user_id", userID))
		h.sendWith(chatID, textSaveFailed, mainMenuKeyboard())
		h.Sessions.Clear(userID, chatID)
		return
	}

	due := scheduler.Notification{
		DeadlineID:  id,
		UserID:      userID,
		Title:       draft.Title,
		DueAt:       draft.DueDate,
		PhotoFileID: draft.PhotoFileID,
		IsDue:       true,
	}
	h.Sched.Schedule(due, draft.DueDate)

	if offset, ok := models.ReminderOffsets[label]; ok {
		lead := due
		lead.IsDue = false
		h.Sched.Schedule(lead, draft.DueDate.Add(-offset))
	}

	h.Logger.Info("deadline created",
		zap.Int64("deadline_id", id),
		zap.Int64("user_id", userID),
		zap.Time("due_at", draft.DueDate),
		zap.String("reminder", label))

	h.sendWith(chatID,
		fmt.Sprintf(textDeadlineAdded, draft.Title, draft.DueDate.Format(displayLayout), label),
		mainMenuKeyboard())
	h.Sessions.Clear(userID, chatID)
}

// ---- view / status flow ----------------------------------------------

func (h *Handler) startViewFlow(msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	list, err := h.DB.ListByUser(userID)
	if err != nil {
		h.Logger.Error("list deadlines failed", zap.Error(err), zap.Int64("user_id", userID))
		h.sendWith(chatID, textListFailed, mainMenuKeyboard())
		return
	}
	if len(list) == 0 {
		h.sendWith(chatID, textNoDeadlines, mainMenuKeyboard())
		h.Sessions.Clear(userID, chatID)
		return
	}

	h.send(chatID, textYourDeadlines)
	for i, d := range list {
		line := formatDeadlineLine(i+1, d)
		if d.PhotoFileID != "" {
			photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(d.PhotoFileID))
			photo.Caption = line
			if _, err := h.Bot.Send(photo); err != nil {
				h.Logger.Error("send photo failed", zap.Error(err), zap.Int64("chat_id", chatID))
			}
		} else {
			h.send(chatID, line)
		}
	}

	h.Sessions.Update(userID, chatID, func(s *session.Session) {
		s.State = models.StateAwaitingStatusSelection
		s.Draft = models.Draft{Deadlines: list}
	})
	h.sendWith(chatID, textPickNumberStatus, indexKeyboard(len(list), btnBack))
}

func (h *Handler) handleStatusSelection(msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID
	choice := strings.TrimSpace(msg.Text)

	if strings.EqualFold(choice, btnBack) || strings.EqualFold(choice, btnCancel) {
		h.sendWith(chatID, textBackToMenu, mainMenuKeyboard())
		h.Sessions.Clear(userID, chatID)
		return
	}

	list := h.Sessions.Get(userID, chatID).Draft.Deadlines
	if len(list) == 0 {
		h.sendWith(chatID, textDraftLost, mainMenuKeyboard())
		h.Sessions.Clear(userID, chatID)
		return
	}

	idx, err := strconv.Atoi(choice)
	if err != nil {
		h.sendWith(chatID, textPickNumberOrBack, indexKeyboard(len(list), btnBack))
		return
	}
	if idx < 1 || idx > len(list) {
		h.sendWith(chatID, textInvalidNumber, indexKeyboard(len(list), btnBack))
		return
	}

	selected := list[idx-1]
	h.Sessions.Update(userID, chatID, func(s *session.Session) {
		s.Draft.SelectedIndex = idx - 1
		s.State = models.StateAwaitingStatusAction
	})
	h.send(chatID, fmt.Sprintf(textSelectedDeadline, selected.Title, selected.DueAt.Format(displayLayout)))
	h.sendWith(chatID, textChooseAction, statusActionKeyboard())
}

func (h *Handler) handleStatusAction(msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID
	action := strings.TrimSpace(msg.Text)

	if strings.EqualFold(action, btnBack) {
		h.sendWith(chatID, textBackToMenu, mainMenuKeyboard())
		h.Sessions.Clear(userID, chatID)
		return
	}

	draft := h.Sessions.Get(userID, chatID).Draft
	if len(draft.Deadlines) == 0 || draft.SelectedIndex >= len(draft.Deadlines) {
		h.sendWith(chatID, textDraftLost, mainMenuKeyboard())
		h.Sessions.Clear(userID, chatID)
		return
	}
	selected := draft.Deadlines[draft.SelectedIndex]

	var (
		completed  bool
		statusText string
	)
	switch action {
	case btnMarkDone:
		completed, statusText = true, textStatusDone
	case btnMarkNotDone:
		completed, statusText = false, textStatusNotDone
	default:
		h.sendWith(chatID, textChooseActionRetry, statusActionKeyboard())
		return
	}

	if err := h.DB.SetCompleted(selected.ID, completed); err != nil {
		h.Logger.Error("set completed failed", zap.Error(err), zap.Int64("deadline_id", selected.ID))
		h.sendWith(chatID, textUpdateFailed, mainMenuKeyboard())
		h.Sessions.Clear(userID, chatID)
		return
	}

	h.sendWith(chatID, fmt.Sprintf(textStatusUpdated, selected.Title, statusText), mainMenuKeyboard())
	h.Sessions.Clear(userID, chatID)
}

// ---- delete flow ------------------------------------------------------

func (h *Handler) startDeleteFlow(msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	list, err := h.DB.ListByUser(userID)
	if err != nil {
		h.Logger.Error("list deadlines failed", zap.Error(err), zap.Int64("user_id", userID))
		h.sendWith(chatID, textListFailed, mainMenuKeyboard())
		return
	}
	if len(list) == 0 {
		h.sendWith(chatID, textNoDeadlinesToDelete, mainMenuKeyboard())
		return
	}

	h.Sessions.Update(userID, chatID, func(s *session.Session) {
		s.State = models.StateAwaitingDeleteSelection
		s.Draft = models.Draft{Deadlines: list}
	})
	h.sendWith(chatID, deleteListText(list), indexKeyboard(len(list), btnCancel))
}

func (h *Handler) handleDeleteSelection(msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID
	choice := strings.TrimSpace(msg.Text)

	if strings.EqualFold(choice, btnCancel) {
		h.sendWith(chatID, textDeleteCancelled, mainMenuKeyboard())
		h.Sessions.Clear(userID, chatID)
		return
	}

	list := h.Sessions.Get(userID, chatID).Draft.Deadlines
	if len(list) == 0 {
		h.sendWith(chatID, textDraftLost, mainMenuKeyboard())
		h.Sessions.Clear(userID, chatID)
		return
	}

	idx, err := strconv.Atoi(choice)
	if err != nil {
		h.sendWith(chatID, textPickNumberOrCancel, indexKeyboard(len(list), btnCancel))
		return
	}
	if idx < 1 || idx > len(list) {
		h.sendWith(chatID, textInvalidNumber, indexKeyboard(len(list), btnCancel))
		return
	}

	selected := list[idx-1]
	h.Sessions.Update(userID, chatID, func(s *session.Session) {
		s.Draft.SelectedIndex = idx - 1
		s.State = models.StateAwaitingDeleteConfirmation
	})
	h.sendWith(chatID,
		fmt.Sprintf(textConfirmDelete, selected.Title, selected.DueAt.Format(displayLayout)),
		deleteConfirmKeyboard())
}

// ---- rendering helpers ------------------------------------------------

func formatDeadlineLine(idx int, d models.Deadline) string {
	description := d.Description
	if description == "" {
		description = textNoDescription
	}
	reminder := d.Reminder
	if reminder == "" {
		reminder = textNoReminder
	}
	return fmt.Sprintf("%d. %s — %s, %s, reminder: %s, %s",
		idx, d.Title, d.DueAt.Format(displayLayout), description, reminder, statusWord(d))
}

func deleteListText(list []models.Deadline) string {
	var b strings.Builder
	b.WriteString(textPickNumberDelete)
	for i, d := range list {
		fmt.Fprintf(&b, "\n%d. %s — %s, %s",
			i+1, d.Title, d.DueAt.Format(displayLayout), statusWord(d))
	}
	return b.String()
}

func statusWord(d models.Deadline) string {
	if d.Completed {
		return "✅ done"
	}
	return "⏳ pending"
}
