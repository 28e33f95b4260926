package database

import (
	"fmt"
	"strings"
	"time"
)

const sessionColumns = "id, subject, duration_minutes, recorded_at"

// SessionQuery builds filtered reads of the session log.
type SessionQuery struct {
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewSessionQuery() *SessionQuery {
	return &SessionQuery{orderBy: "recorded_at ASC, id ASC"}
}

func (q *SessionQuery) Where(filter string, args ...interface{}) *SessionQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

// Since keeps sessions recorded at or after t. Timestamps are stored in UTC.
func (q *SessionQuery) Since(t time.Time) *SessionQuery {
	return q.Where("recorded_at >= ?", t.UTC())
}

func (q *SessionQuery) WhereSubject(subject string) *SessionQuery {
	return q.Where("subject = ?", subject)
}

func (q *SessionQuery) OrderBy(orderBy string) *SessionQuery {
	q.orderBy = orderBy
	return q
}

func (q *SessionQuery) Limit(limit int) *SessionQuery {
	q.limit = limit
	return q
}

func (q *SessionQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM sessions", sessionColumns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
