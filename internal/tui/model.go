package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/akyairhashvil/studyfocus/internal/config"
	"github.com/akyairhashvil/studyfocus/internal/models"
	"github.com/akyairhashvil/studyfocus/internal/timer"
	"github.com/akyairhashvil/studyfocus/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Store is the slice of the database the timer screen uses.
type Store interface {
	ReportSource
	IncompleteSubjects(ctx context.Context) ([]string, error)
	MinutesSince(ctx context.Context, since time.Time) (int, error)
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Options wires the timer screen.
type Options struct {
	Store    Store
	Settings models.TimerSettings
	// SettingsPath receives focus level and theme changes; empty disables saving.
	SettingsPath string
	Recorder     timer.SessionRecorder
	Alarm        timer.AlarmNotifier
	Logger       *slog.Logger
	ReportsDir   string
	Now          func() time.Time
}

type subjectsLoadedMsg struct {
	subjects []string
	saved    string
	err      error
}

type todayMinutesMsg struct {
	minutes int
	err     error
}

type reportDoneMsg struct {
	path string
	err  error
}

type settingsSavedMsg struct {
	err error
}

// Model is the bubbletea model of the timer screen.
type Model struct {
	ctx          context.Context
	engine       *timer.Engine
	sched        *tickScheduler
	store        Store
	logger       *slog.Logger
	settingsPath string
	reportsDir   string
	now          func() time.Time

	keys     keyMap
	help     help.Model
	progress progress.Model
	theme    Theme

	subjects     []string
	subjectIdx   int
	todayMinutes int
	status       string
	statusErr    bool
	width        int
	height       int
	quitting     bool
}

// NewModel builds the engine with a tea.Tick scheduler. The engine starts
// paused in focus.
func NewModel(ctx context.Context, opts Options) (Model, error) {
	if opts.Store == nil {
		return Model{}, errors.New("tui: store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sched := newTickScheduler(config.TickInterval)
	engine, err := timer.New(opts.Settings, timer.Options{
		Scheduler: sched,
		Recorder:  opts.Recorder,
		Alarm:     opts.Alarm,
		Logger:    logger,
	})
	if err != nil {
		return Model{}, err
	}

	theme := ThemeFor(opts.Settings.Theme)
	m := Model{
		ctx:          ctx,
		engine:       engine,
		sched:        sched,
		store:        opts.Store,
		logger:       logger,
		settingsPath: opts.SettingsPath,
		reportsDir:   opts.ReportsDir,
		now:          now,
		keys:         defaultKeyMap(),
		help:         help.New(),
		theme:        theme,
		subjects:     []string{models.GeneralSubject},
		status:       "Press space to start",
	}
	m.progress = newProgress(theme, progressWidth(0))
	return m, nil
}

func newProgress(theme Theme, width int) progress.Model {
	p := progress.New(progress.WithSolidFill(string(theme.Accent)), progress.WithoutPercentage())
	p.Width = width
	return p
}

// Engine exposes the timer for callers that drive it outside the program.
func (m Model) Engine() *timer.Engine { return m.engine }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSubjects(), m.loadTodayMinutes())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = progressWidth(msg.Width)
		m.help.Width = msg.Width

	case TickMsg:
		if m.sched.accept(msg) {
			before := m.engine.State().Phase
			m.engine.Tick()
			cmds = append(cmds, m.afterAdvance(before))
		}

	case subjectsLoadedMsg:
		m.applySubjects(msg)

	case todayMinutesMsg:
		if msg.err != nil {
			util.LogError(m.logger, "load today minutes", msg.err)
		} else {
			m.todayMinutes = msg.minutes
		}

	case reportDoneMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("report: %w", msg.err))
		} else {
			m.setStatus("Report saved to " + msg.path)
		}

	case settingsSavedMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("save settings: %w", msg.err))
		}

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		if m.quitting {
			return m, cmd
		}
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.sched.cmd())
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.engine.Close()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if m.engine.State().Running {
			m.engine.Pause()
			m.setStatus("Paused")
		} else {
			m.engine.Start()
			m.setStatus(m.engine.State().Phase.Label() + " running")
		}

	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
		m.setStatus(m.engine.State().Phase.Label() + " reset")

	case key.Matches(msg, m.keys.Skip):
		before := m.engine.State().Phase
		m.engine.Skip()
		cmd := m.afterAdvance(before)
		return m, cmd

	case key.Matches(msg, m.keys.Subject):
		return m.nextSubject()

	case key.Matches(msg, m.keys.Level):
		return m.nextFocusLevel()

	case key.Matches(msg, m.keys.Theme):
		settings := m.engine.Settings()
		settings.Theme = nextThemeName(m.theme.Name)
		if err := m.engine.Reconfigure(settings); err != nil {
			m.setError(err)
			return m, nil
		}
		m.theme = ThemeFor(settings.Theme)
		m.progress = newProgress(m.theme, m.progress.Width)
		m.setStatus("Theme: " + m.theme.Name)
		return m, m.saveSettings(settings)

	case key.Matches(msg, m.keys.Report):
		m.setStatus("Generating report…")
		return m, m.generateReport()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// afterAdvance updates the status line when the phase changed and refreshes
// today's total after a focus period was logged.
func (m *Model) afterAdvance(before models.Phase) tea.Cmd {
	if m.engine.State().Phase == before {
		return nil
	}
	tr, _ := m.engine.LastTransition()
	switch tr.Kind {
	case timer.TransitionSkipped:
		m.setStatus(fmt.Sprintf("Skipped to %s", tr.To.Label()))
	default:
		m.setStatus(fmt.Sprintf("%s finished. %s next", tr.From.Label(), tr.To.Label()))
	}
	if tr.From == models.PhaseFocus {
		return m.loadTodayMinutes()
	}
	return nil
}

func (m Model) nextSubject() (Model, tea.Cmd) {
	if len(m.subjects) == 0 {
		return m, nil
	}
	idx := (m.subjectIdx + 1) % len(m.subjects)
	if err := m.engine.SetSubject(m.subjects[idx]); err != nil {
		m.setError(err)
		return m, nil
	}
	m.subjectIdx = idx
	m.setStatus("Subject: " + m.subjects[idx])
	return m, m.saveSubject(m.subjects[idx])
}

func (m Model) nextFocusLevel() (Model, tea.Cmd) {
	settings := m.engine.Settings()
	levels := models.FocusLevels()
	next := levels[0]
	for i, level := range levels {
		if level == settings.FocusLevel {
			next = levels[(i+1)%len(levels)]
			break
		}
	}
	settings = models.ApplyFocusLevel(settings, next)
	if err := m.engine.Reconfigure(settings); err != nil {
		m.setError(err)
		return m, nil
	}
	m.setStatus(fmt.Sprintf("Focus level: %s (applies from the next period)", next))
	return m, m.saveSettings(settings)
}

func (m *Model) applySubjects(msg subjectsLoadedMsg) {
	if msg.err != nil {
		util.LogError(m.logger, "load subjects", msg.err)
	}
	m.subjects = timer.SubjectCandidates(models.GeneralSubject, msg.subjects)
	current := m.engine.State().Subject
	for i, s := range m.subjects {
		if s == msg.saved && s != current {
			if err := m.engine.SetSubject(s); err != nil {
				break
			}
			current = s
		}
		if s == current {
			m.subjectIdx = i
		}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	m.logger.Warn("timer command failed", "err", err)
}

func (m Model) loadSubjects() tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		subjects, err := store.IncompleteSubjects(ctx)
		saved, _ := store.GetSetting(ctx, config.SettingSelectedSubject)
		return subjectsLoadedMsg{subjects: subjects, saved: saved, err: err}
	}
}

func (m Model) loadTodayMinutes() tea.Cmd {
	ctx, store, now := m.ctx, m.store, m.now()
	return func() tea.Msg {
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		minutes, err := store.MinutesSince(ctx, midnight)
		return todayMinutesMsg{minutes: minutes, err: err}
	}
}

func (m Model) saveSubject(subject string) tea.Cmd {
	ctx, store, logger := m.ctx, m.store, m.logger
	return func() tea.Msg {
		util.LogError(logger, "save selected subject", store.SetSetting(ctx, config.SettingSelectedSubject, subject))
		return nil
	}
}

func (m Model) saveSettings(settings models.TimerSettings) tea.Cmd {
	path := m.settingsPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		return settingsSavedMsg{err: config.SaveSettings(path, settings)}
	}
}

func (m Model) generateReport() tea.Cmd {
	ctx, store, dir := m.ctx, m.store, m.reportsDir
	return func() tea.Msg {
		path, err := GenerateStudyReport(ctx, store, dir)
		return reportDoneMsg{path: path, err: err}
	}
}
