package handlers

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-deadline-bot/internal/models"
)

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAddDeadline),
			tgbotapi.NewKeyboardButton(btnDeleteDeadline),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnViewDeadlines),
		),
	)
}

func supportKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnSupport, cbSupport),
		),
	)
}

func faqKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnFAQAdd, faqAddDeadline),
			tgbotapi.NewInlineKeyboardButtonData(btnFAQDelete, faqDeleteDeadline),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnFAQReminder, faqReminder),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnFAQContact, cbContactSupport),
		),
	)
}

// hoursKeyboard covers 0-23 in rows of four.
func hoursKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for start := 0; start < 24; start += 4 {
		row := make([]tgbotapi.InlineKeyboardButton, 0, 4)
		for hour := start; hour < start+4; hour++ {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%02d:00", hour),
				fmt.Sprintf("%s%d", hourPrefix, hour)))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// minutesKeyboard offers 5-minute steps; the callback carries the hour
// forward so the minutes step can compose the full time.
func minutesKeyboard(hour int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for start := 0; start < 60; start += 20 {
		row := make([]tgbotapi.InlineKeyboardButton, 0, 4)
		for minute := start; minute < start+20; minute += 5 {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%02d", minute),
				fmt.Sprintf("%s%d_%d", minutesPrefix, hour, minute)))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func confirmTimeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnConfirm, cbConfirmTime),
			tgbotapi.NewInlineKeyboardButtonData(btnClear, cbClearTime),
			tgbotapi.NewInlineKeyboardButtonData(btnCancel, cbCancelTime),
		),
	)
}

func deleteConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnConfirm, cbConfirmDelete),
			tgbotapi.NewInlineKeyboardButtonData(btnClear, cbClearDelete),
			tgbotapi.NewInlineKeyboardButtonData(btnCancel, cbCancelDelete),
		),
	)
}

func skipKeyboard(callbackData string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnSkip, callbackData),
		),
	)
}

func reminderKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(models.ReminderHour),
			tgbotapi.NewKeyboardButton(models.ReminderDay),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(models.ReminderThreeDay),
			tgbotapi.NewKeyboardButton(models.ReminderNone),
		),
	)
}

// indexKeyboard renders one button per list entry plus a closing button
// ("Back" or "Cancel" depending on the flow).
func indexKeyboard(count int, last string) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, count+1)
	for i := 1; i <= count; i++ {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(strconv.Itoa(i))))
	}
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(last)))
	return tgbotapi.NewReplyKeyboard(rows...)
}

func statusActionKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnMarkDone),
			tgbotapi.NewKeyboardButton(btnMarkNotDone),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnBack),
		),
	)
}
