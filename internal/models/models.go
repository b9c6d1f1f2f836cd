package models

import "time"

// Reminder labels offered when a deadline is created.
const (
	ReminderHour     = "1 hour before"
	ReminderDay      = "1 day before"
	ReminderThreeDay = "3 days before"
	ReminderNone     = "no reminder"
)

// ReminderOffsets maps a lead-reminder label to how long before the due
// moment the notification fires. ReminderNone has no entry.
var ReminderOffsets = map[string]time.Duration{
	ReminderHour:     time.Hour,
	ReminderDay:      24 * time.Hour,
	ReminderThreeDay: 72 * time.Hour,
}

// Deadline is one stored reminder record.
type Deadline struct {
	ID          int64
	UserID      int64
	Title       string
	DueAt       time.Time
	Description string
	Reminder    string
	PhotoFileID string
	Completed   bool
}

// Draft accumulates the fields of a new deadline while the user is still
// answering conversation steps. It lives in memory only and is lost on
// restart.
type Draft struct {
	Title       string
	DueDate     time.Time // day at 23:59 until the minutes step fixes the time
	Hour        int
	Description string
	PhotoFileID string

	// Snapshot taken when a selection list is shown, so indexes stay
	// stable while the user is choosing.
	Deadlines     []Deadline
	SelectedIndex int
}
