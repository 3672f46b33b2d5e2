// Package prefs persists trivial local user preferences. The only key is
// the board theme, stored as a single literal string.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Theme values. Anything else found on disk degrades to ThemeDay.
const (
	ThemeDay   = "day"
	ThemeNight = "night"
)

// Store round-trips the theme literal through a small file. It is read
// once at startup and written on toggle; correctness beyond round-tripping
// the literal string is out of scope.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the conventional theme file location under the
// user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, "corkboard", "theme"), nil
}

// Theme reads the stored theme. A missing file or an unrecognized value
// yields ThemeDay.
func (s *Store) Theme() string {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return ThemeDay
	}
	switch theme := strings.TrimSpace(string(raw)); theme {
	case ThemeDay, ThemeNight:
		return theme
	default:
		return ThemeDay
	}
}

// SetTheme writes the theme literal.
func (s *Store) SetTheme(theme string) error {
	if theme != ThemeDay && theme != ThemeNight {
		return fmt.Errorf("unknown theme: %q", theme)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create preference directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(theme), 0644); err != nil {
		return fmt.Errorf("failed to write theme: %w", err)
	}
	return nil
}

// Toggle flips between day and night and returns the new value.
func (s *Store) Toggle() (string, error) {
	next := ThemeNight
	if s.Theme() == ThemeNight {
		next = ThemeDay
	}
	if err := s.SetTheme(next); err != nil {
		return "", err
	}
	return next, nil
}
