package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/trackline/internal/domain"
)

// trackerColumns is the canonical SELECT column list for trackers.
const trackerColumns = `id, title, type, priority, status, start_date, end_date, created_at, updated_at`

// ErrNotFound is returned when a tracker does not exist.
var ErrNotFound = errors.New("tracker not found")

// SQLiteTrackerRepo implements TrackerRepo using a SQLite database.
type SQLiteTrackerRepo struct {
	db *sql.DB
}

// NewSQLiteTrackerRepo creates a new SQLiteTrackerRepo.
func NewSQLiteTrackerRepo(db *sql.DB) *SQLiteTrackerRepo {
	return &SQLiteTrackerRepo{db: db}
}

func (r *SQLiteTrackerRepo) Create(ctx context.Context, t *domain.Tracker) error {
	query := `INSERT INTO trackers (id, title, type, priority, status, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		string(t.Type),
		string(t.Priority),
		t.Status,
		domain.DayOf(t.StartDate).Format(dateLayout),
		domain.DayOf(t.EndDate).Format(dateLayout),
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting tracker: %w", err)
	}
	return nil
}

func (r *SQLiteTrackerRepo) GetByID(ctx context.Context, id string) (*domain.Tracker, error) {
	query := `SELECT ` + trackerColumns + ` FROM trackers WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := scanTracker(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return t, err
}

func (r *SQLiteTrackerRepo) List(ctx context.Context) ([]*domain.Tracker, error) {
	query := `SELECT ` + trackerColumns + ` FROM trackers ORDER BY start_date, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing trackers: %w", err)
	}
	defer rows.Close()
	return scanTrackers(rows)
}

// ListInRange returns trackers whose date range intersects [start, end],
// ordered by start date then ID for deterministic layout runs.
func (r *SQLiteTrackerRepo) ListInRange(ctx context.Context, start, end time.Time) ([]*domain.Tracker, error) {
	query := `SELECT ` + trackerColumns + ` FROM trackers
		WHERE start_date <= ? AND end_date >= ?
		ORDER BY start_date, id`
	rows, err := r.db.QueryContext(ctx, query,
		domain.DayOf(end).Format(dateLayout),
		domain.DayOf(start).Format(dateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("listing trackers in range: %w", err)
	}
	defer rows.Close()
	return scanTrackers(rows)
}

func (r *SQLiteTrackerRepo) Update(ctx context.Context, t *domain.Tracker) error {
	query := `UPDATE trackers
		SET title = ?, type = ?, priority = ?, status = ?, start_date = ?, end_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		string(t.Type),
		string(t.Priority),
		t.Status,
		domain.DayOf(t.StartDate).Format(dateLayout),
		domain.DayOf(t.EndDate).Format(dateLayout),
		t.UpdatedAt.UTC().Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating tracker: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, t.ID)
	}
	return nil
}

func (r *SQLiteTrackerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trackers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting tracker: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTracker(row rowScanner) (*domain.Tracker, error) {
	var t domain.Tracker
	var typ, priority, startDate, endDate, createdAt, updatedAt string

	err := row.Scan(&t.ID, &t.Title, &typ, &priority, &t.Status, &startDate, &endDate, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning tracker: %w", err)
	}

	t.Type = domain.TrackerType(typ)
	t.Priority = domain.Priority(priority)
	t.StartDate = parseDate(startDate)
	t.EndDate = parseDate(endDate)
	t.CreatedAt = parseTimestamp(createdAt)
	t.UpdatedAt = parseTimestamp(updatedAt)
	return &t, nil
}

func scanTrackers(rows *sql.Rows) ([]*domain.Tracker, error) {
	var trackers []*domain.Tracker
	for rows.Next() {
		t, err := scanTracker(rows)
		if err != nil {
			return nil, err
		}
		trackers = append(trackers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trackers: %w", err)
	}
	return trackers, nil
}
