package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/studyfocus/internal/database"
	"github.com/akyairhashvil/studyfocus/internal/models"
	"github.com/akyairhashvil/studyfocus/internal/util"
	"github.com/go-pdf/fpdf"
)

// ReportSource is the read side of the store the report needs.
type ReportSource interface {
	StudyStats(ctx context.Context) (models.StudyStats, error)
	SessionLogs(ctx context.Context, q *database.SessionQuery) ([]models.SessionLog, error)
}

// GenerateStudyReport writes study_report_<date>.pdf into dir and returns
// its absolute path.
func GenerateStudyReport(ctx context.Context, src ReportSource, dir string) (string, error) {
	return generateStudyReportAt(ctx, src, dir, time.Now())
}

func generateStudyReportAt(ctx context.Context, src ReportSource, dir string, now time.Time) (string, error) {
	stats, err := src.StudyStats(ctx)
	if err != nil {
		return "", fmt.Errorf("load stats: %w", err)
	}
	logs, err := src.SessionLogs(ctx, database.NewSessionQuery().OrderBy("recorded_at DESC, id DESC"))
	if err != nil {
		return "", fmt.Errorf("load sessions: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	date := now.Format("2006-01-02")
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Study Report: %s", date))
	pdf.Ln(12)

	// Summary
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Focus time: %s across %d sessions", util.FormatMinutes(stats.TotalMinutes), stats.SessionCount))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Tasks: %d completed, %d pending", stats.TasksCompleted, stats.TasksPending))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "By subject")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(stats.BySubject) == 0 {
		pdf.Cell(0, 8, "  - No focus sessions recorded.")
		pdf.Ln(8)
	}
	for _, sm := range stats.BySubject {
		pdf.CellFormat(120, 8, tr("  "+sm.Subject), "", 0, "", false, 0, "")
		pdf.CellFormat(0, 8, util.FormatMinutes(sm.Minutes), "", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	if len(logs) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Sessions")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, l := range logs {
			line := fmt.Sprintf("[%s] %s (%d min)", l.RecordedAt.Local().Format("2006-01-02 15:04"), l.Subject, l.DurationMinutes)
			pdf.MultiCell(0, 7, tr(line), "", "", false)
		}
	}

	filename := filepath.Join(dir, fmt.Sprintf("study_report_%s.pdf", date))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return absPath, nil
}
