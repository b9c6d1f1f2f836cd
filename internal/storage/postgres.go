package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"telegram-deadline-bot/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Postgres keeps deadlines in a PostgreSQL database. Schema and behavior
// match the SQLite store.
type Postgres struct {
	db  *sql.DB
	loc *time.Location
}

func NewPostgres(cfg PostgresConfig, loc *time.Location) (*Postgres, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	b, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(string(b)); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	return &Postgres{db: db, loc: loc}, nil
}

func (s *Postgres) CreateDeadline(d *models.Deadline) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
        INSERT INTO deadlines (user_id, title, date, description, reminder, photo_file_id, completed)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id`,
		d.UserID, d.Title, d.DueAt.Format(DateLayout), d.Description, d.Reminder,
		nullable(d.PhotoFileID), boolToInt(d.Completed)).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Postgres) ListByUser(userID int64) ([]models.Deadline, error) {
	rows, err := s.db.Query(`
        SELECT id, user_id, title, date, description, reminder, photo_file_id, completed
        FROM deadlines WHERE user_id = $1 ORDER BY date ASC`, userID)
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

func (s *Postgres) GetDeadline(id int64) (*models.Deadline, error) {
	row := s.db.QueryRow(`
        SELECT id, user_id, title, date, description, reminder, photo_file_id, completed
        FROM deadlines WHERE id = $1`, id)
	d, err := scanDeadline(row, s.loc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Postgres) SetCompleted(id int64, completed bool) error {
	_, err := s.db.Exec(`UPDATE deadlines SET completed = $1 WHERE id = $2`, boolToInt(completed), id)
	return err
}

func (s *Postgres) DeleteDeadline(id int64) error {
	_, err := s.db.Exec(`DELETE FROM deadlines WHERE id = $1`, id)
	return err
}

func (s *Postgres) Close() error { return s.db.Close() }
