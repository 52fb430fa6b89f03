// Package settings persists the player's best score and audio preferences
// as small JSON files in the data directory.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
)

// File names inside the data directory.
const (
	HighScoreFile   = "highScore.json"
	PreferencesFile = "userPreferences.json"
)

// VolumeStep is the change applied by one volume key press.
const VolumeStep = 0.2

// HighScore is the on-disk best score.
type HighScore struct {
	HighestScore int `json:"highestScore"`
}

// Preferences holds audio volumes in [0, 1].
type Preferences struct {
	Music float64 `json:"music"`
	Sfx   float64 `json:"sfx"`
}

// DefaultPreferences returns full volume for both channels.
func DefaultPreferences() Preferences {
	return Preferences{Music: 1, Sfx: 1}
}

// Clamp limits both volumes to [0, 1] and snaps them to tenths.
func (p Preferences) Clamp() Preferences {
	p.Music = clampVolume(p.Music)
	p.Sfx = clampVolume(p.Sfx)
	return p
}

// AdjustSfx returns the preferences with sfx moved by delta steps.
func (p Preferences) AdjustSfx(steps int) Preferences {
	p.Sfx += float64(steps) * VolumeStep
	return p.Clamp()
}

// AdjustMusic returns the preferences with music moved by delta steps.
func (p Preferences) AdjustMusic(steps int) Preferences {
	p.Music += float64(steps) * VolumeStep
	return p.Clamp()
}

func clampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Round(math.Max(0, math.Min(1, v))*10) / 10
}

// Store reads and writes settings files under one directory.
type Store struct {
	dir string
}

// Open returns a store rooted at dir, creating it if needed. A leading ~
// expands to the home directory.
func Open(dir string) (*Store, error) {
	if dir != "" && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("settings: cannot expand home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("settings: cannot create directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// HighScore returns the saved best score; 0 when none is saved yet.
func (s *Store) HighScore() (int, error) {
	var hs HighScore
	if err := s.read(HighScoreFile, &hs); err != nil {
		return 0, err
	}
	return max(0, hs.HighestScore), nil
}

// RecordScore saves score if it beats the saved best and reports whether it did.
func (s *Store) RecordScore(score int) (bool, error) {
	best, err := s.HighScore()
	if err != nil {
		// A corrupt file is replaced.
		best = 0
	}
	if score <= best {
		return false, nil
	}
	if err := s.write(HighScoreFile, HighScore{HighestScore: score}); err != nil {
		return false, err
	}
	return true, nil
}

// Preferences returns the saved preferences, or the defaults when none exist.
func (s *Store) Preferences() (Preferences, error) {
	p := DefaultPreferences()
	if err := s.read(PreferencesFile, &p); err != nil {
		return DefaultPreferences(), err
	}
	return p.Clamp(), nil
}

// SavePreferences writes p after clamping it.
func (s *Store) SavePreferences(p Preferences) error {
	return s.write(PreferencesFile, p.Clamp())
}

// read decodes a file into v; a missing file leaves v untouched.
func (s *Store) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("settings: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("settings: parse %s: %w", name, err)
	}
	return nil
}

// write replaces a file atomically via a temp file and rename.
func (s *Store) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("settings: encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("settings: write %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("settings: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("settings: write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("settings: write %s: %w", name, err)
	}
	return nil
}
