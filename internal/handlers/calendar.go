package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Inline month-view calendar. Callback data format:
//
//	cal:day:2025:6:15   pick a concrete day
//	cal:prev:2025:6     show the previous month
//	cal:next:2025:6     show the next month
//	cal:skip            decorative cell, acknowledged and ignored
const (
	calPrefix = "cal:"
	calIgnore = "cal:skip"
)

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

func calendarKeyboard(year int, month time.Month) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s %d", month, year), calIgnore)))

	header := make([]tgbotapi.InlineKeyboardButton, 0, 7)
	for _, wd := range weekdayHeader {
		header = append(header, tgbotapi.NewInlineKeyboardButtonData(wd, calIgnore))
	}
	rows = append(rows, header)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7 // Monday-first grid
	days := daysIn(year, month)

	row := make([]tgbotapi.InlineKeyboardButton, 0, 7)
	for i := 0; i < offset; i++ {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(" ", calIgnore))
	}
	for day := 1; day <= days; day++ {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			strconv.Itoa(day),
			fmt.Sprintf("cal:day:%d:%d:%d", year, int(month), day)))
		if len(row) == 7 {
			rows = append(rows, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 7)
		}
	}
	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(" ", calIgnore))
		}
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("<", fmt.Sprintf("cal:prev:%d:%d", year, int(month))),
		tgbotapi.NewInlineKeyboardButtonData(">", fmt.Sprintf("cal:next:%d:%d", year, int(month))),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func daysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// parseCalendarData splits "cal:<action>:..." into the action and its
// numeric arguments.
func parseCalendarData(data string) (action string, args []int, err error) {
	parts := strings.Split(data, ":")
	if len(parts) < 2 {
		return "", nil, fmt.Errorf("malformed calendar callback %q", data)
	}
	action = parts[1]
	for _, p := range parts[2:] {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return "", nil, fmt.Errorf("malformed calendar callback %q", data)
		}
		args = append(args, n)
	}
	return action, args, nil
}
