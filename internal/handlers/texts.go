package handlers

// Main menu and inline button labels.
const (
	btnAddDeadline    = "Add deadline"
	btnDeleteDeadline = "Delete deadline"
	btnViewDeadlines  = "View deadlines"

	btnBack        = "Back"
	btnCancel      = "Cancel"
	btnSkip        = "Skip"
	btnConfirm     = "Confirm"
	btnClear       = "Clear"
	btnMarkDone    = "Mark as done"
	btnMarkNotDone = "Mark as not done"
	btnSupport     = "❓ Support"
)

// Callback data values.
const (
	cbConfirmTime     = "confirm_time"
	cbClearTime       = "clear_time"
	cbCancelTime      = "cancel_time"
	cbSkipDescription = "skip_description"
	cbSkipPhoto       = "skip_photo"
	cbConfirmDelete   = "confirm_delete"
	cbClearDelete     = "clear_delete"
	cbCancelDelete    = "cancel_delete"
	cbSupport         = "support"
	cbContactSupport  = "contact_support"

	faqPrefix     = "faq_"
	hourPrefix    = "time_"
	minutesPrefix = "minutes_"
)

const (
	textGreeting    = "Hi, %s! I'm a bot for managing deadlines.\nPick what you want to do:"
	textSupportHint = "If you need help, contact support:"
	textMainMenu    = "Pick what you want to do:"
	textCancelled   = "Action cancelled."
	textBackToMenu  = "Back to the main menu."

	textAskTitle    = "What is the deadline called? (e.g. Calculus course project)"
	textEmptyTitle  = "The title cannot be empty. Try again:"
	textPickDate    = "Pick a date:"
	textPickTime    = "Pick a time (required):"
	textPickMinutes = "Pick the minutes (required):"
	textTimeChosen  = "Time selected!"
	textPastDate    = "That date is in the past. Start over with /cancel and pick a new date."

	textConfirmTime   = "Selected time: %s. Confirm your choice:"
	textTimeConfirmed = "Time confirmed ✅!"
	textPickTimeAgain = "Pick the time again:"

	textAskDescription     = "Enter a description (or press 'Skip'):"
	textDescriptionSkipped = "Description skipped."
	textAskPhoto           = "Attach a photo to the description (or press 'Skip'):"
	textNeedPhoto          = "Please send a photo (or press 'Skip'):"
	textPhotoSaved         = "Photo saved! When should I remind you?"
	textPhotoSkipped       = "Photo skipped."
	textAskReminder        = "When should I remind you?"
	textReminderInvalid    = "Please pick one of the offered reminder options:"
	textDeadlineAdded      = "Deadline %q on %s added! Reminder: %s."
	textSaveFailed         = "Sorry, the deadline could not be saved. Please try again."

	textNoDeadlines         = "You have no deadlines."
	textNoDeadlinesToDelete = "You have no deadlines to delete."
	textYourDeadlines       = "Your deadlines:"
	textPickNumberStatus    = "Pick a deadline number to change its status:"
	textSelectedDeadline    = "Selected deadline: %s — %s"
	textChooseAction        = "What do you want to do with the selected deadline?"
	textChooseActionRetry   = "Please pick one of the offered actions:"
	textStatusUpdated       = "Deadline %q marked as %s!"
	textStatusDone          = "done ✅"
	textStatusNotDone       = "not done ⏳"
	textInvalidNumber       = "Invalid number. Try again:"
	textPickNumberOrBack    = "Please pick a deadline number or 'Back':"
	textPickNumberOrCancel  = "Pick a deadline number or 'Cancel':"
	textListFailed          = "Sorry, your deadlines could not be loaded. Please try again."
	textUpdateFailed        = "Sorry, the deadline could not be updated. Please try again."

	textPickNumberDelete = "Pick a deadline to delete:"
	textConfirmDelete    = "Selected for deletion: %s — %s. Confirm your choice:"
	textDeleted          = "Deadline %q deleted ✅!"
	textDeleteCancelled  = "Deletion cancelled."
	textDeleteFailed     = "Sorry, the deadline could not be deleted. Please try again."
	textDraftLost        = "Error: deadline data was lost. Please try again."

	textNoDescription = "no description"
	textNoReminder    = "none"
)

// FAQ texts restored from the support section of the bot.
const (
	textFAQIntro = "📖 Frequently asked questions (FAQ):\nPick a question or write to the developers:"
	textFAQMore  = "📖 Other questions, or write to the developers:"

	faqAddDeadline    = faqPrefix + "add_deadline"
	faqDeleteDeadline = faqPrefix + "delete_deadline"
	faqReminder       = faqPrefix + "reminder"

	btnFAQAdd      = "How do I add a deadline?"
	btnFAQDelete   = "How do I delete a deadline?"
	btnFAQReminder = "How do reminders work?"
	btnFAQContact  = "📩 Write to the developers"

	textFAQUnknown = "There is no answer for this question yet."
	textContact    = "Contact the developers: @deadline_bot_support"
)

var faqAnswers = map[string]string{
	faqAddDeadline: "To add a deadline:\n1. Press 'Add deadline'.\n2. Enter a title.\n3. Pick a date and time.\n4. Add a description and photo (or skip them).\n5. Choose when to be reminded.",
	faqDeleteDeadline: "To delete a deadline:\n1. Press 'Delete deadline'.\n2. Pick a deadline from the list.\n3. Confirm the deletion.",
	faqReminder: "Reminders work like this:\n- Choose '1 hour before', '1 day before' or '3 days before' when adding a deadline.\n- The bot messages you that long before the deadline, and again at the deadline moment.",
}
