package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/akyairhashvil/studyfocus/internal/config"
	"github.com/akyairhashvil/studyfocus/internal/models"
	"github.com/spf13/cobra"
)

var (
	setLevel      string
	setFocus      int
	setShortBreak int
	setLongBreak  int
	setPeriods    int
	setAutoBreaks bool
	setAutoFocus  bool
	setAlarm      string
	setTheme      string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change timer settings",
	Long: `Show the effective timer settings, or change them with flags.
Changes are validated and written to settings.yaml.

Examples:
  studyfocus settings
  studyfocus settings --level deepWork
  studyfocus settings --focus 45 --short 10 --periods 3
  studyfocus settings --theme magenta --auto-breaks`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	f := settingsCmd.Flags()
	f.StringVar(&setLevel, "level", "", "Focus level preset: pomodoro, deepWork, eisenhower, custom")
	f.IntVar(&setFocus, "focus", 0, "Focus minutes")
	f.IntVar(&setShortBreak, "short", 0, "Short break minutes")
	f.IntVar(&setLongBreak, "long", 0, "Long break minutes")
	f.IntVar(&setPeriods, "periods", 0, "Focus periods per cycle")
	f.BoolVar(&setAutoBreaks, "auto-breaks", false, "Start breaks automatically")
	f.BoolVar(&setAutoFocus, "auto-focus", false, "Start focus periods automatically")
	f.StringVar(&setAlarm, "alarm", "", "Alarm sound file; empty uses the terminal bell")
	f.StringVar(&setTheme, "theme", "", "Theme: cyan, magenta, green")
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	path, err := resolveSettingsPath()
	if err != nil {
		return err
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		return fmt.Errorf("load settings %s: %w", path, err)
	}

	flags := cmd.Flags()
	changed := false
	if flags.Changed("level") {
		level := models.FocusLevel(setLevel)
		if !isKnownLevel(level) {
			return config.ValidationError{Field: "focus_level", Message: fmt.Sprintf("unknown level %q", setLevel)}
		}
		settings = models.ApplyFocusLevel(settings, level)
		changed = true
	}
	custom := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
			settings.FocusLevel = models.FocusLevelCustom
			changed = true
		}
	}
	custom("focus", func() { settings.FocusSeconds = setFocus * 60 })
	custom("short", func() { settings.ShortBreakSeconds = setShortBreak * 60 })
	custom("long", func() { settings.LongBreakSeconds = setLongBreak * 60 })
	custom("periods", func() { settings.PeriodsPerCycle = setPeriods })
	if flags.Changed("auto-breaks") {
		settings.AutoStartBreaks = setAutoBreaks
		changed = true
	}
	if flags.Changed("auto-focus") {
		settings.AutoStartFocus = setAutoFocus
		changed = true
	}
	if flags.Changed("alarm") {
		settings.AlarmSound = strings.TrimSpace(setAlarm)
		changed = true
	}
	if flags.Changed("theme") {
		switch setTheme {
		case config.ThemeCyan, config.ThemeMagenta, config.ThemeGreen:
			settings.Theme = setTheme
		default:
			return config.ValidationError{Field: "theme", Message: fmt.Sprintf("unknown theme %q", setTheme)}
		}
		changed = true
	}

	out := cmd.OutOrStdout()
	if changed {
		if err := config.SaveSettings(path, settings); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved %s\n", path)
	}
	printSettings(out, settings)
	return nil
}

func isKnownLevel(level models.FocusLevel) bool {
	for _, l := range models.FocusLevels() {
		if l == level {
			return true
		}
	}
	return false
}

func printSettings(w io.Writer, s models.TimerSettings) {
	alarmSound := s.AlarmSound
	if alarmSound == "" {
		alarmSound = "terminal bell"
	}
	fmt.Fprintf(w, "focus level:       %s\n", s.FocusLevel)
	fmt.Fprintf(w, "focus:             %d min\n", s.FocusSeconds/60)
	fmt.Fprintf(w, "short break:       %d min\n", s.ShortBreakSeconds/60)
	fmt.Fprintf(w, "long break:        %d min\n", s.LongBreakSeconds/60)
	fmt.Fprintf(w, "periods per cycle: %d\n", s.PeriodsPerCycle)
	fmt.Fprintf(w, "auto-start breaks: %t\n", s.AutoStartBreaks)
	fmt.Fprintf(w, "auto-start focus:  %t\n", s.AutoStartFocus)
	fmt.Fprintf(w, "alarm:             %s\n", alarmSound)
	fmt.Fprintf(w, "theme:             %s\n", s.Theme)
}
