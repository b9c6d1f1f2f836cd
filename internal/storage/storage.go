package storage

import "telegram-deadline-bot/internal/models"

// DateLayout is how due timestamps are stored in the date column.
const DateLayout = "2006-01-02 15:04:05"

// Storage is durable CRUD over deadline records. Every operation is a
// single self-contained statement; no call spans a transaction over
// multiple operations.
type Storage interface {
	CreateDeadline(d *models.Deadline) (int64, error)
	ListByUser(userID int64) ([]models.Deadline, error)
	GetDeadline(id int64) (*models.Deadline, error)
	SetCompleted(id int64, completed bool) error
	DeleteDeadline(id int64) error
	Close() error
}
