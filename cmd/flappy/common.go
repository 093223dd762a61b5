package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/audio"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// defaultMode is played when no mode argument is given.
const defaultMode = "flappy"

// newLogger builds the process logger. Full-screen UIs own the terminal,
// so they log to ~/.flappy/flappy.log unless --log-file says otherwise.
func newLogger(prefix string, ui bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	done := func() {}

	path := flagLogFile
	if path == "" && ui {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".flappy", "flappy.log")
		}
	}
	if path != "" {
		f, err := openLogFile(path)
		switch {
		case err == nil:
			w = f
			done = func() { f.Close() }
		case ui:
			w = io.Discard
		default:
			fmt.Fprintf(os.Stderr, "Warning: %v, logging to stderr\n", err)
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger, done
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// resolveMode validates the optional mode argument.
func resolveMode(args []string) string {
	id := defaultMode
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available modes.")
		os.Exit(1)
	}
	return id
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return storage.DefaultPlayer
}

func runtimeConfig() core.RuntimeConfig {
	w, h := terminalSize()
	return core.RuntimeConfig{
		ScreenW: w,
		ScreenH: h,
		Tick:    flagTick,
		Seed:    flagSeed,
		Player:  playerName(),
	}
}

// openStore opens the scores database. Failure is a warning; the game
// still runs without a leaderboard.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		return nil
	}
	return store
}

// startSound opens the speaker unless muted. It returns nil when sound
// is off or unavailable.
func startSound(logger *log.Logger) *audio.SoundManager {
	if flagMute {
		return nil
	}
	sm := audio.NewSoundManager(flagVolume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	return sm
}

// uiOptions assembles the TUI options. Nil store and sound pointers are
// left as nil interfaces.
func uiOptions(rc core.RuntimeConfig, store *storage.Store, sound *audio.SoundManager, logger *log.Logger) tui.Options {
	opts := tui.Options{Runtime: rc, Logger: logger}
	if store != nil {
		opts.Store = store
	}
	if sound != nil {
		opts.Sound = sound
	}
	return opts
}
