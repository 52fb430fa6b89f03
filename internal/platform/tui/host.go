package tui

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minerun/internal/registry"
	"github.com/vovakirdan/minerun/internal/settings"
	"github.com/vovakirdan/minerun/internal/storage"
)

// Host bundles the services a game session may use. Any field may be nil.
type Host struct {
	Store    *storage.Store
	Settings *settings.Store
	Logger   *log.Logger
}

// runRecorder is implemented by games that describe a finished run in detail.
type runRecorder interface {
	Record() storage.RunRecord
}

func (h Host) logger() *log.Logger {
	if h.Logger == nil {
		return log.New(io.Discard)
	}
	return h.Logger
}

// BestScore returns the best known score for gameID across the database
// and the high score file.
func (h Host) BestScore(gameID string) int {
	best := 0
	if h.Store != nil {
		if s, err := h.Store.HighScore(gameID); err == nil {
			best = s
		} else {
			h.logger().Warn("cannot read high score", "game", gameID, "error", err)
		}
	}
	if h.Settings != nil {
		if s, err := h.Settings.HighScore(); err == nil {
			best = max(best, s)
		} else {
			h.logger().Warn("cannot read high score file", "error", err)
		}
	}
	return best
}

func (h Host) screenshotDir() (string, error) {
	if h.Settings != nil {
		return filepath.Join(h.Settings.Dir(), "screenshots"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".minerun", "screenshots"), nil
}

// preferences returns the saved audio preferences or the defaults.
func (h Host) preferences() settings.Preferences {
	if h.Settings == nil {
		return settings.DefaultPreferences()
	}
	p, err := h.Settings.Preferences()
	if err != nil {
		h.logger().Warn("cannot read preferences", "error", err)
	}
	return p
}

func (h Host) savePreferences(p settings.Preferences) {
	if h.Settings == nil {
		return
	}
	if err := h.Settings.SavePreferences(p); err != nil {
		h.logger().Warn("cannot save preferences", "error", err)
	}
}

// saveResult stores the finished game. Saving is best effort; failures are logged.
func (h Host) saveResult(game registry.Game, score int) {
	logger := h.logger()

	if h.Store != nil {
		var err error
		if rr, ok := game.(runRecorder); ok {
			rec := rr.Record()
			if _, err = h.Store.SaveRun(rec); err == nil {
				logger.Debug("run saved", "game", rec.GameID, "score", rec.Score,
					"time", rec.TimeAlive, "sections", rec.SectionsCleared, "cause", rec.Cause)
			}
		} else {
			_, err = h.Store.SaveScore(game.ID(), score)
		}
		if err != nil {
			logger.Warn("cannot save score", "game", game.ID(), "error", err)
		}
	}

	if h.Settings != nil {
		beaten, err := h.Settings.RecordScore(score)
		if err != nil {
			logger.Warn("cannot save high score", "error", err)
		}
		if beaten {
			logger.Info("new high score", "score", score)
		}
	}
}
