// Package state holds the client's in-memory stores: one view-selection
// store per role surface, the notification stores, and the theme store,
// composed by Root. Each store guards its own state with a mutex and every
// operation is atomic with respect to the invariant it maintains; nothing
// outside the declared operations mutates a store.
package state

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/avolkov/hirelink/internal/storage"
)

// ErrUnknownPage is returned when Select is called with a page that is not a
// member of the surface's declared set. The current value is left untouched,
// so an unknown page can never become the selection.
var ErrUnknownPage = errors.New("unknown page")

// ViewStore holds the currently selected page of one role surface. P is the
// surface's page enum. A store constructed with a settings repository (the
// generic surface) seeds its initial value from storage and writes every new
// value back synchronously inside Select; role-scoped stores are constructed
// without one and reset to their default on every fresh start. That asymmetry
// is deliberate per-surface behavior.
type ViewStore[P ~string] struct {
	mu      sync.Mutex
	surface string
	pages   map[P]struct{}
	current P
	repo    storage.Repository
}

// NewViewStore builds a store for the named surface. def must be a member of
// pages. When repo is non-nil the persisted value overrides def, unless it is
// absent or no longer a valid member.
func NewViewStore[P ~string](ctx context.Context, surface string, pages []P, def P, repo storage.Repository) *ViewStore[P] {
	s := &ViewStore[P]{
		surface: surface,
		pages:   make(map[P]struct{}, len(pages)),
		current: def,
		repo:    repo,
	}
	for _, p := range pages {
		s.pages[p] = struct{}{}
	}

	if repo != nil {
		if v, err := repo.Get(ctx, storage.KeyCurrentView); err == nil {
			if _, ok := s.pages[P(v)]; ok {
				s.current = P(v)
			}
		}
	}

	return s
}

// Pages lists the surface's page names in sorted order. The set is fixed at
// construction, so no lock is taken.
func (s *ViewStore[P]) Pages() []string {
	names := make([]string, 0, len(s.pages))
	for p := range s.pages {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return names
}

// Current returns the selected page.
func (s *ViewStore[P]) Current() P {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Select overwrites the selection unconditionally; any page is reachable from
// any page. For a persisting store the new value is written to storage within
// the same operation.
func (s *ViewStore[P]) Select(ctx context.Context, page P) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pages[page]; !ok {
		return fmt.Errorf("%w: %q on %s surface", ErrUnknownPage, string(page), s.surface)
	}

	s.current = page
	if s.repo != nil {
		if err := s.repo.Set(ctx, storage.KeyCurrentView, string(page)); err != nil {
			return fmt.Errorf("persist %s view: %w", s.surface, err)
		}
	}
	return nil
}
