// Package alarm plays the phase-transition cue, either through an external
// audio player or the terminal bell.
package alarm

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// ErrNoPlayer is returned when a sound file is configured but no player
// command is available.
var ErrNoPlayer = errors.New("no audio player available")

// knownPlayers are probed in order when no command is configured.
var knownPlayers = []string{"paplay", "aplay", "afplay", "ffplay"}

// Bell rings the terminal bell.
type Bell struct {
	W io.Writer
}

func (b Bell) Play(string) error {
	if b.W == nil {
		return nil
	}
	_, err := io.WriteString(b.W, "\a")
	return err
}

// Player runs an external command with the sound file as its last argument.
// An empty sound reference falls back to the bell.
type Player struct {
	Command  string
	Args     []string
	Fallback Bell
	Logger   *slog.Logger

	// lookPath and start are replaced in tests.
	lookPath func(string) (string, error)
	start    func(*exec.Cmd) error
}

// NewPlayer picks the first installed player from knownPlayers when command
// is empty.
func NewPlayer(command string, bell io.Writer, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	fields := strings.Fields(command)
	p := &Player{Fallback: Bell{W: bell}, Logger: logger, lookPath: exec.LookPath, start: startDetached}
	if len(fields) > 0 {
		p.Command, p.Args = fields[0], fields[1:]
	}
	return p
}

// Play starts playback and returns without waiting for it to finish.
func (p *Player) Play(soundRef string) error {
	soundRef = strings.TrimSpace(soundRef)
	if soundRef == "" {
		return p.Fallback.Play("")
	}
	if _, err := os.Stat(soundRef); err != nil {
		_ = p.Fallback.Play("")
		return fmt.Errorf("alarm sound %q: %w", soundRef, err)
	}
	bin, err := p.resolve()
	if err != nil {
		_ = p.Fallback.Play("")
		return err
	}
	args := append(append([]string{}, p.Args...), soundRef)
	cmd := exec.Command(bin, args...)
	if err := p.start(cmd); err != nil {
		_ = p.Fallback.Play("")
		return fmt.Errorf("start %s: %w", bin, err)
	}
	p.Logger.Debug("alarm started", "player", bin, "sound", soundRef)
	return nil
}

func (p *Player) resolve() (string, error) {
	lookPath := p.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if p.Command != "" {
		bin, err := lookPath(p.Command)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoPlayer, err)
		}
		return bin, nil
	}
	for _, name := range knownPlayers {
		if bin, err := lookPath(name); err == nil {
			return bin, nil
		}
	}
	return "", ErrNoPlayer
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	// reap the child so it does not linger as a zombie
	go func() { _ = cmd.Wait() }()
	return nil
}
