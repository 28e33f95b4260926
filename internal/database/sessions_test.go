package database

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/akyairhashvil/studyfocus/internal/models"
)

func TestRecordSessionAndList(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	id, err := db.RecordSession(ctx, models.SessionEvent{Subject: "Math", DurationMinutes: 25})
	if err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected non-zero id")
	}
	if _, err := db.RecordSession(ctx, models.SessionEvent{Subject: "  ", DurationMinutes: 50}); err != nil {
		t.Fatalf("RecordSession blank subject failed: %v", err)
	}

	logs, err := db.SessionLogs(ctx, nil)
	if err != nil {
		t.Fatalf("SessionLogs failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	if logs[0].Subject != "Math" || logs[0].DurationMinutes != 25 {
		t.Fatalf("unexpected first log: %+v", logs[0])
	}
	if logs[1].Subject != models.GeneralSubject {
		t.Fatalf("expected blank subject to fall back to %q, got %q", models.GeneralSubject, logs[1].Subject)
	}
	if logs[0].RecordedAt.IsZero() {
		t.Fatalf("expected RecordedAt to be set")
	}
}

func TestRecordSessionRejectsNonPositiveDuration(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, err := db.RecordSession(ctx, models.SessionEvent{Subject: "Math"}); err == nil {
		t.Fatalf("expected error for zero duration")
	}
}

func TestSessionQueryFilters(t *testing.T) {
	db := NewTestDataBuilder(t).
		WithSession("Math", 25).
		WithSession("Physics", 25).
		WithSession("Math", 50).
		Build()
	ctx := context.Background()

	logs, err := db.SessionLogs(ctx, NewSessionQuery().WhereSubject("Math"))
	if err != nil {
		t.Fatalf("SessionLogs failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 Math logs, got %d", len(logs))
	}

	logs, err = db.SessionLogs(ctx, NewSessionQuery().OrderBy("id DESC").Limit(1))
	if err != nil {
		t.Fatalf("SessionLogs failed: %v", err)
	}
	if len(logs) != 1 || logs[0].DurationMinutes != 50 {
		t.Fatalf("expected latest log, got %+v", logs)
	}

	logs, err = db.SessionLogs(ctx, NewSessionQuery().Since(time.Now().Add(time.Hour)))
	if err != nil {
		t.Fatalf("SessionLogs failed: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("expected no future logs, got %d", len(logs))
	}
}

func TestSessionQueryBuild(t *testing.T) {
	query, args := NewSessionQuery().WhereSubject("Math").Limit(5).Build()
	want := "SELECT id, subject, duration_minutes, recorded_at FROM sessions WHERE subject = ? ORDER BY recorded_at ASC, id ASC LIMIT 5"
	if query != want {
		t.Fatalf("query = %q", query)
	}
	if len(args) != 1 || args[0] != "Math" {
		t.Fatalf("args = %v", args)
	}
}

func TestMinutesSince(t *testing.T) {
	db := NewTestDataBuilder(t).
		WithSession("Math", 25).
		WithSession("Physics", 15).
		Build()
	ctx := context.Background()

	total, err := db.MinutesSince(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("MinutesSince failed: %v", err)
	}
	if total != 40 {
		t.Fatalf("expected 40 minutes, got %d", total)
	}
	total, err = db.MinutesSince(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("MinutesSince failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected 0 minutes, got %d", total)
	}
}

func TestRecorderAdapter(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	rec := db.Recorder(ctx)

	if err := rec.Record(models.SessionEvent{Subject: "Biology", DurationMinutes: 25}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	logs, err := db.SessionLogs(ctx, nil)
	if err != nil {
		t.Fatalf("SessionLogs failed: %v", err)
	}
	if len(logs) != 1 || logs[0].Subject != "Biology" {
		t.Fatalf("unexpected logs: %+v", logs)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := db.Recorder(cancelled).Record(models.SessionEvent{Subject: "Biology", DurationMinutes: 25}); err == nil {
		t.Fatalf("expected cancelled context to fail the write")
	}
}

func TestConcurrentRecordSession(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := db.RecordSession(ctx, models.SessionEvent{Subject: "Math", DurationMinutes: 25}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent record failed: %v", err)
	}
	logs, err := db.SessionLogs(ctx, nil)
	if err != nil {
		t.Fatalf("SessionLogs failed: %v", err)
	}
	if len(logs) != 10 {
		t.Fatalf("expected 10 logs, got %d", len(logs))
	}
}
