package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/studyfocus/internal/models"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

type TestDataBuilder struct {
	t   *testing.T
	ctx context.Context
	db  *Database
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	return &TestDataBuilder{t: t, ctx: ctx, db: setupTestDB(t, ctx)}
}

func (b *TestDataBuilder) WithSession(subject string, minutes int) *TestDataBuilder {
	b.t.Helper()
	if _, err := b.db.RecordSession(b.ctx, models.SessionEvent{Subject: subject, DurationMinutes: minutes}); err != nil {
		b.t.Fatalf("RecordSession failed: %v", err)
	}
	return b
}

func (b *TestDataBuilder) WithHomework(subject, task string, completed bool) *TestDataBuilder {
	b.t.Helper()
	id, err := b.db.AddHomework(b.ctx, subject, task, nil)
	if err != nil {
		b.t.Fatalf("AddHomework failed: %v", err)
	}
	if completed {
		if _, err := b.db.DB.ExecContext(b.ctx, "UPDATE homework SET completed = 1 WHERE id = ?", id); err != nil {
			b.t.Fatalf("mark completed failed: %v", err)
		}
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}
