package database

import (
	"context"

	"github.com/akyairhashvil/studyfocus/internal/models"
)

// StudyStats aggregates focus minutes per subject and task completion counts.
func (d *Database) StudyStats(ctx context.Context) (models.StudyStats, error) {
	var stats models.StudyStats

	err := d.DB.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(duration_minutes), 0), COUNT(1) FROM sessions",
	).Scan(&stats.TotalMinutes, &stats.SessionCount)
	if err != nil {
		return stats, wrapSessionErr("stats", 0, err)
	}

	rows, err := d.DB.QueryContext(ctx, `
		SELECT subject, SUM(duration_minutes) AS minutes
		FROM sessions
		GROUP BY subject
		ORDER BY minutes DESC, subject ASC`)
	if err != nil {
		return stats, wrapSessionErr("stats", 0, err)
	}
	defer rows.Close()
	for rows.Next() {
		var sm models.SubjectMinutes
		if err := rows.Scan(&sm.Subject, &sm.Minutes); err != nil {
			return stats, wrapSessionErr("stats", 0, err)
		}
		stats.BySubject = append(stats.BySubject, sm)
	}
	if err := rows.Err(); err != nil {
		return stats, wrapSessionErr("stats", 0, err)
	}

	err = d.DB.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(completed), 0), COUNT(1) - COALESCE(SUM(completed), 0) FROM homework",
	).Scan(&stats.TasksCompleted, &stats.TasksPending)
	if err != nil {
		return stats, wrapHomeworkErr("stats", 0, err)
	}
	return stats, nil
}
