package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/studyfocus/internal/models"
)

// SessionRepository defines session-log operations.
type SessionRepository interface {
	RecordSession(ctx context.Context, event models.SessionEvent) (int64, error)
	SessionLogs(ctx context.Context, q *SessionQuery) ([]models.SessionLog, error)
	MinutesSince(ctx context.Context, since time.Time) (int, error)
}

// HomeworkRepository defines homework-list operations.
type HomeworkRepository interface {
	AddHomework(ctx context.Context, subject, task string, deadline *time.Time) (int64, error)
	ListHomework(ctx context.Context, includeCompleted bool) ([]models.Homework, error)
	IncompleteSubjects(ctx context.Context) ([]string, error)
}

// StatsRepository aggregates the session log and homework list.
type StatsRepository interface {
	StudyStats(ctx context.Context) (models.StudyStats, error)
}

// SettingsRepository is a key/value store for UI state.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	SessionRepository
	HomeworkRepository
	StatsRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
