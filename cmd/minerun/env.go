package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/minerun/internal/config"
	"github.com/vovakirdan/minerun/internal/core"
	"github.com/vovakirdan/minerun/internal/games/minerun"
	"github.com/vovakirdan/minerun/internal/platform/tui"
	"github.com/vovakirdan/minerun/internal/settings"
	"github.com/vovakirdan/minerun/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// runtimeConfig sizes the screen to the terminal, 80x24 if unknown.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags validates and hands the config flags to the game package.
func applyGameFlags(hitboxes bool) {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			fail("%v", err)
		}
	}
	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			fail("%v", err)
		}
	}
	minerun.SetConfigPath(flagConfig)
	minerun.SetDifficultyPreset(flagDifficulty)
	minerun.SetHitboxes(hitboxes)
}

// openHost opens storage, settings and the logger. Storage and settings are
// optional: the game still works without them. The returned func closes
// everything.
func openHost(debug bool) (tui.Host, func()) {
	var host tui.Host
	var closers []func()

	host.Logger = log.New(io.Discard)
	if debug {
		logger, closeLog, err := openDebugLog()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
		} else {
			host.Logger = logger
			closers = append(closers, closeLog)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		host.Store = store
		closers = append(closers, func() { store.Close() })
	}

	st, err := settings.Open(flagDataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open settings: %v\n", err)
	} else {
		host.Settings = st
	}

	return host, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}

// openDebugLog appends debug output to debug.log in the data directory.
func openDebugLog() (*log.Logger, func(), error) {
	st, err := settings.Open(flagDataDir)
	if err != nil {
		return nil, nil, err
	}
	path := filepath.Join(st.Dir(), "debug.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "minerun",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
