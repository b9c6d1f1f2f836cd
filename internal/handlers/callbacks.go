package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"telegram-deadline-bot/internal/models"
	"telegram-deadline-bot/internal/session"
)

// HandleCallback dispatches an inline-button press. Presses that do not
// match the current conversation state are acknowledged and ignored
// rather than misapplied.
func (h *Handler) HandleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		return
	}
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID
	messageID := cq.Message.MessageID
	data := cq.Data

	// always answer so the client stops showing the spinner
	if _, err := h.Bot.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		h.Logger.Error("answer callback failed", zap.Error(err), zap.Int64("chat_id", chatID))
	}

	switch {
	case strings.HasPrefix(data, calPrefix):
		h.handleCalendarCallback(userID, chatID, messageID, data)
	case strings.HasPrefix(data, hourPrefix):
		h.handleHourCallback(userID, chatID, messageID, data)
	case strings.HasPrefix(data, minutesPrefix):
		h.handleMinutesCallback(userID, chatID, messageID, data)
	case data == cbConfirmTime, data == cbClearTime, data == cbCancelTime:
		h.handleTimeConfirmation(userID, chatID, messageID, data)
	case data == cbSkipDescription:
		h.handleSkipDescription(userID, chatID, messageID)
	case data == cbSkipPhoto:
		h.handleSkipPhoto(userID, chatID, messageID)
	case data == cbConfirmDelete, data == cbClearDelete, data == cbCancelDelete:
		h.handleDeleteConfirmation(userID, chatID, messageID, data)
	case data == cbSupport:
		h.editWithKeyboard(chatID, messageID, textFAQIntro, faqKeyboard())
	case strings.HasPrefix(data, faqPrefix):
		h.handleFAQ(chatID, messageID, data)
	case data == cbContactSupport:
		h.edit(chatID, messageID, textContact)
	}
}

func (h *Handler) handleCalendarCallback(userID, chatID int64, messageID int, data string) {
	if h.Sessions.State(userID, chatID) != models.StateAwaitingDate {
		return
	}
	action, args, err := parseCalendarData(data)
	if err != nil {
		h.Logger.Warn("bad calendar callback", zap.String("data", data))
		return
	}

	switch action {
	case "day":
		if len(args) != 3 {
			return
		}
		year, month, day := args[0], time.Month(args[1]), args[2]
		// provisional time of day until the minutes step fixes it
		due := time.Date(year, month, day, 23, 59, 0, 0, h.Loc)
		h.Sessions.Update(userID, chatID, func(s *session.Session) {
			s.Draft.DueDate = due
			s.State = models.StateAwaitingTime
		})
		h.sendWith(chatID, textPickTime, hoursKeyboard())

	case "prev", "next":
		if len(args) != 2 {
			return
		}
		shift := 1
		if action == "prev" {
			shift = -1
		}
		shown := time.Date(args[0], time.Month(args[1]), 1, 0, 0, 0, 0, time.UTC).AddDate(0, shift, 0)
		h.editWithKeyboard(chatID, messageID, textPickDate, calendarKeyboard(shown.Year(), shown.Month()))
	}
}

func (h *Handler) handleHourCallback(userID, chatID int64, messageID int, data string) {
	if h.Sessions.State(userID, chatID) != models.StateAwaitingTime {
		return
	}
	hour, err := strconv.Atoi(strings.TrimPrefix(data, hourPrefix))
	if err != nil || hour < 0 || hour > 23 {
		return
	}
	h.Sessions.Update(userID, chatID, func(s *session.Session) {
		s.Draft.Hour = hour
		s.State = models.StateAwaitingMinutes
	})
	h.editWithKeyboard(chatID, messageID, textPickMinutes, minutesKeyboard(hour))
}

func (h *Handler) handleMinutesCallback(userID, chatID int64, messageID int, data string) {
	if h.Sessions.State(userID, chatID) != models.StateAwaitingMinutes {
		return
	}
	parts := strings.Split(strings.TrimPrefix(data, minutesPrefix), "_")
	if len(parts) != 2 {
		return
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return
	}

	draft := h.Sessions.Get(userID, chatID).Draft
	due := time.Date(draft.DueDate.Year(), draft.DueDate.Month(), draft.DueDate.Day(),
		hour, minute, 0, 0, h.Loc)

	if due.Before(h.now()) {
		h.edit(chatID, messageID, textPastDate)
		h.Sessions.Clear(userID, chatID)
		return
	}

	h.Sessions.Update(userID, chatID, func(s *session.Session) {
		s.Draft.DueDate = due
		s.State = models.StateAwaitingConfirmation
	})
	h.edit(chatID, messageID, textTimeChosen)
	h.sendWith(chatID, fmt.Sprintf(textConfirmTime, due.Format(displayLayout)), confirmTimeKeyboard())
}

func (h *Handler) handleTimeConfirmation(userID, chatID int64, messageID int, data string) {
	if h.Sessions.State(userID, chatID) != models.StateAwaitingConfirmation {
		return
	}
	switch data {
	case cbConfirmTime:
		h.Sessions.SetState(userID, chatID, models.StateAwaitingDescription)
		h.edit(chatID, messageID, textTimeConfirmed)
		h.sendWith(chatID, textAskDescription, skipKeyboard(cbSkipDescription))

	case cbClearTime:
		// back to the hour picker; the chosen date is kept
		h.Sessions.SetState(userID, chatID, models.StateAwaitingTime)
		h.editWithKeyboard(chatID, messageID, textPickTimeAgain, hoursKeyboard())

	case cbCancelTime:
		h.edit(chatID, messageID, textCancelled)
		h.sendWith(chatID, textMainMenu, mainMenuKeyboard())
		h.Sessions.Clear(userID, chatID)
	}
}

func (h *Handler) handleSkipDescription(userID, chatID int64, messageID int) {
	if h.Sessions.State(userID, chatID) != models.StateAwaitingDescription {
		return
	}
	h.Sessions.Update(userID, chatID, func(s *session.Session) {
		s.Draft.Description = ""
		s.State = models.StateAwaitingPhoto
	})
	h.edit(chatID, messageID, textDescriptionSkipped)
	h.sendWith(chatID, textAskPhoto, skipKeyboard(cbSkipPhoto))
}

func (h *Handler) handleSkipPhoto(userID, chatID int64, messageID int) {
	if h.Sessions.State(userID, chatID) != models.StateAwaitingPhoto {
		return
	}
	h.Sessions.Update(userID, chatID, func(s *session.Session) {
		s.Draft.PhotoFileID = ""
		s.State = models.StateAwaitingReminder
	})
	h.edit(chatID, messageID, textPhotoSkipped)
	h.sendWith(chatID, textAskReminder, reminderKeyboard())
}

func (h *Handler) handleDeleteConfirmation(userID, chatID int64, messageID int, data string) {
	if h.Sessions.State(userID, chatID) != models.StateAwaitingDeleteConfirmation {
		return
	}
	draft := h.Sessions.Get(userID, chatID).Draft
	if len(draft.Deadlines) == 0 || draft.SelectedIndex >= len(draft.Deadlines) {
		h.edit(chatID, messageID, textDraftLost)
		h.Sessions.Clear(userID, chatID)
		return
	}
	selected := draft.Deadlines[draft.SelectedIndex]

	switch data {
	case cbConfirmDelete:
		if err := h.DB.DeleteDeadline(selected.ID); err != nil {
			h.Logger.Error("delete deadline failed", zap.Error(err), zap.Int64("deadline_id", selected.ID))
			h.edit(chatID, messageID, textDeleteFailed)
			h.Sessions.Clear(userID, chatID)
			return
		}
		h.Sched.CancelFor(selected.ID)
		h.Logger.Info("deadline deleted",
			zap.Int64("deadline_id", selected.ID), zap.Int64("user_id", userID))
		h.edit(chatID, messageID, fmt.Sprintf(textDeleted, selected.Title))
		h.sendWith(chatID, textMainMenu, mainMenuKeyboard())
		h.Sessions.Clear(userID, chatID)

	case cbClearDelete:
		// the user wants a different record: re-render the selection list
		if _, err := h.Bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
			h.Logger.Error("delete message failed", zap.Error(err), zap.Int64("chat_id", chatID))
		}
		h.Sessions.SetState(userID, chatID, models.StateAwaitingDeleteSelection)
		h.sendWith(chatID, deleteListText(draft.Deadlines), indexKeyboard(len(draft.Deadlines), btnCancel))

	case cbCancelDelete:
		h.edit(chatID, messageID, textDeleteCancelled)
		h.sendWith(chatID, textMainMenu, mainMenuKeyboard())
		h.Sessions.Clear(userID, chatID)
	}
}

func (h *Handler) handleFAQ(chatID int64, messageID int, data string) {
	answer, ok := faqAnswers[data]
	if !ok {
		answer = textFAQUnknown
	}
	h.editWithKeyboard(chatID, messageID, answer+"\n\n"+textFAQMore, faqKeyboard())
}
