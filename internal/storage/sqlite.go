package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"telegram-deadline-bot/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

// SQLite keeps deadlines in a local sqlite database file.
type SQLite struct {
	db  *sql.DB
	loc *time.Location
}

func NewSQLite(path string, loc *time.Location) (*SQLite, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err := migrateSQLite(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return &SQLite{db: db, loc: loc}, nil
}

func migrateSQLite(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := db.Exec(string(b)); err != nil {
		return err
	}
	return ensurePhotoColumn(db)
}

// ensurePhotoColumn adds photo_file_id to databases created before the
// column existed. Existing rows are left untouched.
func ensurePhotoColumn(db *sql.DB) error {
	rows, err := db.Query(`PRAGMA table_info(deadlines)`)
	if err != nil {
		return err
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return err
		}
		if name == "photo_file_id" {
			found = true
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if found {
		return nil
	}
	_, err = db.Exec(`ALTER TABLE deadlines ADD COLUMN photo_file_id TEXT`)
	return err
}

func (s *SQLite) CreateDeadline(d *models.Deadline) (int64, error) {
	res, err := s.db.Exec(`
        INSERT INTO deadlines (user_id, title, date, description, reminder, photo_file_id, completed)
        VALUES (?,?,?,?,?,?,?)`,
		d.UserID, d.Title, d.DueAt.Format(DateLayout), d.Description, d.Reminder,
		nullable(d.PhotoFileID), boolToInt(d.Completed))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *SQLite) ListByUser(userID int64) ([]models.Deadline, error) {
	rows, err := s.db.Query(`
        SELECT id, user_id, title, date, description, reminder, photo_file_id, completed
        FROM deadlines WHERE user_id = ? ORDER BY date ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []models.Deadline
	for rows.Next() {
		d, err := scanDeadline(rows, s.loc)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, rows.Err()
}

func (s *SQLite) GetDeadline(id int64) (*models.Deadline, error) {
	row := s.db.QueryRow(`
        SELECT id, user_id, title, date, description, reminder, photo_file_id, completed
        FROM deadlines WHERE id = ?`, id)
	d, err := scanDeadline(row, s.loc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *SQLite) SetCompleted(id int64, completed bool) error {
	_, err := s.db.Exec(`UPDATE deadlines SET completed = ? WHERE id = ?`, boolToInt(completed), id)
	return err
}

func (s *SQLite) DeleteDeadline(id int64) error {
	_, err := s.db.Exec(`DELETE FROM deadlines WHERE id = ?`, id)
	return err
}

func (s *SQLite) Close() error { return s.db.Close() }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeadline(row rowScanner, loc *time.Location) (models.Deadline, error) {
	var (
		d         models.Deadline
		date      string
		desc      sql.NullString
		reminder  sql.NullString
		photo     sql.NullString
		completed int
	)
	if err := row.Scan(&d.ID, &d.UserID, &d.Title, &date, &desc, &reminder, &photo, &completed); err != nil {
		return models.Deadline{}, err
	}
	due, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return models.Deadline{}, fmt.Errorf("parse due date %q: %w", date, err)
	}
	d.DueAt = due
	d.Description = desc.String
	d.Reminder = reminder.String
	d.PhotoFileID = photo.String
	d.Completed = completed == 1
	return d, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
