package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/akyairhashvil/studyfocus/internal/models"
)

// RecordSession appends a completed focus period to the session log.
func (d *Database) RecordSession(ctx context.Context, event models.SessionEvent) (int64, error) {
	subject := strings.TrimSpace(event.Subject)
	if subject == "" {
		subject = models.GeneralSubject
	}
	if event.DurationMinutes <= 0 {
		return 0, wrapSessionErr("record", 0, errors.New("duration must be positive"))
	}
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO sessions (subject, duration_minutes, recorded_at) VALUES (?, ?, ?)",
		subject, event.DurationMinutes, time.Now().UTC(),
	)
	if err != nil {
		return 0, wrapSessionErr("record", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapSessionErr("record", 0, err)
	}
	return id, nil
}

// SessionLogs runs q against the session log. A nil query lists everything.
func (d *Database) SessionLogs(ctx context.Context, q *SessionQuery) ([]models.SessionLog, error) {
	if q == nil {
		q = NewSessionQuery()
	}
	query, args := q.Build()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	defer rows.Close()

	var logs []models.SessionLog
	for rows.Next() {
		var l models.SessionLog
		if err := rows.Scan(&l.ID, &l.Subject, &l.DurationMinutes, &l.RecordedAt); err != nil {
			return nil, wrapSessionErr("list", 0, err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	return logs, nil
}

// MinutesSince sums the focus minutes recorded at or after since.
func (d *Database) MinutesSince(ctx context.Context, since time.Time) (int, error) {
	var total int
	err := d.DB.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(duration_minutes), 0) FROM sessions WHERE recorded_at >= ?",
		since.UTC(),
	).Scan(&total)
	if err != nil {
		return 0, wrapSessionErr("sum", 0, err)
	}
	return total, nil
}

// SessionRecorder adapts the database to the timer's recorder port.
type SessionRecorder struct {
	db      *Database
	ctx     context.Context
	timeout time.Duration
}

// Recorder returns a recorder whose writes are bounded by ctx and a short timeout.
func (d *Database) Recorder(ctx context.Context) *SessionRecorder {
	return &SessionRecorder{db: d, ctx: ctx, timeout: 5 * time.Second}
}

func (r *SessionRecorder) Record(event models.SessionEvent) error {
	ctx, cancel := context.WithTimeout(r.ctx, r.timeout)
	defer cancel()
	_, err := r.db.RecordSession(ctx, event)
	return err
}
