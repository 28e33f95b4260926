package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/akyairhashvil/studyfocus/internal/models"
	"github.com/akyairhashvil/studyfocus/internal/util"
)

// AddHomework stores a task. Subject and task are required.
func (d *Database) AddHomework(ctx context.Context, subject, task string, deadline *time.Time) (int64, error) {
	subject = strings.TrimSpace(subject)
	task = strings.TrimSpace(task)
	if subject == "" || task == "" {
		return 0, wrapHomeworkErr("add", 0, errors.New("subject and task are required"))
	}
	var deadlineArg *time.Time
	if deadline != nil {
		deadlineArg = util.Ptr(deadline.UTC())
	}
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO homework (subject, task, deadline) VALUES (?, ?, ?)",
		subject, task, toNullableArg(deadlineArg),
	)
	if err != nil {
		return 0, wrapHomeworkErr("add", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapHomeworkErr("add", 0, err)
	}
	return id, nil
}

// ListHomework returns tasks in insertion order.
func (d *Database) ListHomework(ctx context.Context, includeCompleted bool) ([]models.Homework, error) {
	query := "SELECT id, subject, task, deadline, completed, created_at FROM homework"
	if !includeCompleted {
		query += " WHERE completed = 0"
	}
	query += " ORDER BY id ASC"

	rows, err := d.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapHomeworkErr("list", 0, err)
	}
	defer rows.Close()

	var items []models.Homework
	for rows.Next() {
		var h models.Homework
		var deadline sql.NullTime
		var completed int
		if err := rows.Scan(&h.ID, &h.Subject, &h.Task, &deadline, &completed, &h.CreatedAt); err != nil {
			return nil, wrapHomeworkErr("list", 0, err)
		}
		h.Deadline = timePtr(deadline)
		h.Completed = util.IntToBool(completed)
		items = append(items, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapHomeworkErr("list", 0, err)
	}
	return items, nil
}

// IncompleteSubjects returns the distinct subjects of unfinished tasks,
// ordered by first appearance. This feeds the timer's subject picker.
func (d *Database) IncompleteSubjects(ctx context.Context) ([]string, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT subject FROM homework WHERE completed = 0 GROUP BY subject ORDER BY MIN(id) ASC")
	if err != nil {
		return nil, wrapHomeworkErr("subjects", 0, err)
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, wrapHomeworkErr("subjects", 0, err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapHomeworkErr("subjects", 0, err)
	}
	return subjects, nil
}
