package state

import (
	"fmt"
	"sync"
)

// Theme is the global display theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a stored or user-supplied theme string.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// ThemeStore holds the single theme value. Persistence and palette
// application live outside the store: the application root registers an
// OnChange effect that re-runs on every change.
type ThemeStore struct {
	mu       sync.Mutex
	current  Theme
	onChange func(Theme)
}

// NewThemeStore seeds the store. An invalid initial value falls back to light.
func NewThemeStore(initial Theme) *ThemeStore {
	t, err := ParseTheme(string(initial))
	if err != nil {
		t = ThemeLight
	}
	return &ThemeStore{current: t}
}

// OnChange registers the root's companion effect. The effect fires on every
// subsequent Set, outside the store's lock.
func (s *ThemeStore) OnChange(fn func(Theme)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Set unconditionally overwrites the theme with a valid value and triggers
// the registered effect.
func (s *ThemeStore) Set(t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = t
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(t)
	}
	return nil
}

func (s *ThemeStore) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
