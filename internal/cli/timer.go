package cli

import (
	"context"
	"errors"
	"os"

	"github.com/akyairhashvil/studyfocus/internal/alarm"
	"github.com/akyairhashvil/studyfocus/internal/config"
	"github.com/akyairhashvil/studyfocus/internal/tui"
	"github.com/akyairhashvil/studyfocus/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var alarmCommandFlag string

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var errNoTerminal = errors.New("the timer needs an interactive terminal; try 'studyfocus stats' or 'studyfocus report'")

func init() {
	rootCmd.Flags().StringVar(&alarmCommandFlag, "alarm-command", "",
		"Audio player used for alarm_sound files (default: first of paplay, aplay, afplay, ffplay)")
}

func runTimer(cmd *cobra.Command, args []string) error {
	if !stdinIsTerminal() {
		return errNoTerminal
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	env, err := openEnv(ctx, cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}
	defer env.Close()

	model, err := tui.NewModel(ctx, tui.Options{
		Store:        env.db,
		Settings:     env.settings,
		SettingsPath: env.settingsPath,
		Recorder:     env.db.Recorder(ctx),
		Alarm:        alarm.NewPlayer(alarmCommandFlag, os.Stderr, env.logger),
		Logger:       env.logger,
		ReportsDir:   util.ReportsDir(config.AppName),
	})
	if err != nil {
		return err
	}
	defer model.Engine().Close()

	env.logger.Info("timer started", "focus_level", env.settings.FocusLevel)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
