package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/studyfocus/internal/config"
	"github.com/akyairhashvil/studyfocus/internal/database"
	"github.com/akyairhashvil/studyfocus/internal/models"
	"github.com/akyairhashvil/studyfocus/internal/util"
	"golang.org/x/term"
)

// appEnv bundles what every command needs: the store, the settings and a logger.
type appEnv struct {
	db           *database.Database
	settings     models.TimerSettings
	settingsPath string
	logger       *slog.Logger
	closers      []io.Closer
}

func (e *appEnv) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		util.LogError(e.logger, "close", e.closers[i].Close())
	}
}

// resolveDBPath picks --db, then $STUDYFOCUS_DB, then the data dir.
func resolveDBPath() string {
	if dbPathFlag != "" {
		return dbPathFlag
	}
	if env := strings.TrimSpace(os.Getenv(config.DBPathEnv)); env != "" {
		return env
	}
	return filepath.Join(util.DataDir(config.AppName), config.DBFileName)
}

func resolveSettingsPath() (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}
	return config.DefaultSettingsPath()
}

// openEnv opens the database and loads settings. With logToFile the log
// goes to the data dir so it does not corrupt the TUI; otherwise stderr.
func openEnv(ctx context.Context, stderr io.Writer, logToFile bool) (*appEnv, error) {
	level, err := util.ParseLevel(logLevelFlag)
	if err != nil {
		return nil, err
	}

	env := &appEnv{}
	if logToFile {
		dir, err := util.EnsureDir(util.DataDir(config.AppName))
		if err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(dir, config.LogFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		env.closers = append(env.closers, f)
		env.logger = util.NewLogger(f, level, false)
	} else {
		env.logger = util.NewLogger(stderr, level, isTerminalWriter(stderr))
	}

	settingsPath, err := resolveSettingsPath()
	if err != nil {
		env.Close()
		return nil, err
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("load settings %s: %w", settingsPath, err)
	}
	env.settings = settings
	env.settingsPath = settingsPath

	dbPath := resolveDBPath()
	if _, err := util.EnsureDir(filepath.Dir(dbPath)); err != nil {
		env.Close()
		return nil, fmt.Errorf("create database dir: %w", err)
	}
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		env.Close()
		return nil, err
	}
	env.db = db
	env.closers = append(env.closers, db)
	env.logger.Debug("environment ready", "db", dbPath, "settings", settingsPath)
	return env, nil
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
