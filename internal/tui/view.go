package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/studyfocus/internal/config"
	"github.com/akyairhashvil/studyfocus/internal/models"
	"github.com/akyairhashvil/studyfocus/internal/util"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width > 0 && m.width < config.CompactModeThreshold {
		return m.compactView()
	}

	state := m.engine.State()
	settings := m.engine.Settings()
	t := m.theme

	clockStyle := t.Clock
	if state.Phase != models.PhaseFocus {
		clockStyle = t.Break
	}
	runLabel := "paused"
	if state.Running {
		runLabel = "running"
	}

	header := t.Header.Render(strings.ToUpper(config.AppName)) + t.Dim.Render(" · "+string(settings.FocusLevel))
	phase := t.Label.Render(state.Phase.Label()) + t.Dim.Render(" ("+runLabel+")")
	clock := clockStyle.Render(util.FormatClock(state.Remaining))
	bar := m.progress.ViewAs(m.engine.ProgressPercent() / 100)
	cycle := t.Dim.Render(fmt.Sprintf("Cycle %d/%d", m.engine.PeriodsCompletedInCycle(), settings.PeriodsPerCycle))
	subject := t.Label.Render("Subject: " + truncate(state.Subject, config.MaxSubjectWidth))
	today := t.Dim.Render("Today: " + util.FormatMinutes(m.todayMinutes))

	body := lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		phase,
		clock,
		bar,
		"",
		cycle+t.Dim.Render("   ")+subject,
		today,
	)
	frame := t.Frame.Render(body)

	return t.Base.Render(lipgloss.JoinVertical(lipgloss.Left,
		frame,
		m.statusLine(config.MaxStatusWidth),
		m.help.View(m.keys),
	))
}

func (m Model) compactView() string {
	state := m.engine.State()
	t := m.theme
	line := fmt.Sprintf("%s %s  %d/%d",
		state.Phase.Label(),
		util.FormatClock(state.Remaining),
		m.engine.PeriodsCompletedInCycle(),
		m.engine.Settings().PeriodsPerCycle,
	)
	width := m.width - 2
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Header.Render(truncate(line, width)),
		t.Label.Render(truncate(state.Subject, width)),
		m.statusLine(width),
	)
}

func (m Model) statusLine(width int) string {
	if m.status == "" {
		return ""
	}
	text := truncate(m.status, width)
	if m.statusErr {
		return m.theme.Error.Render(text)
	}
	return m.theme.Status.Render(text)
}
