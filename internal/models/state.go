package models

// State tags which conversation step may process the next input from a
// given user/chat pair.
type State int

const (
	StateNone State = iota
	StateAwaitingTitle
	StateAwaitingDate
	StateAwaitingTime
	StateAwaitingMinutes
	StateAwaitingConfirmation
	StateAwaitingDescription
	StateAwaitingPhoto
	StateAwaitingReminder
	StateAwaitingStatusSelection
	StateAwaitingStatusAction
	StateAwaitingDeleteSelection
	StateAwaitingDeleteConfirmation
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateAwaitingTitle:
		return "awaiting_title"
	case StateAwaitingDate:
		return "awaiting_date"
	case StateAwaitingTime:
		return "awaiting_time"
	case StateAwaitingMinutes:
		return "awaiting_minutes"
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	case StateAwaitingDescription:
		return "awaiting_description"
	case StateAwaitingPhoto:
		return "awaiting_photo"
	case StateAwaitingReminder:
		return "awaiting_reminder"
	case StateAwaitingStatusSelection:
		return "awaiting_status_selection"
	case StateAwaitingStatusAction:
		return "awaiting_status_action"
	case StateAwaitingDeleteSelection:
		return "awaiting_delete_selection"
	case StateAwaitingDeleteConfirmation:
		return "awaiting_delete_confirmation"
	}
	return "unknown"
}
