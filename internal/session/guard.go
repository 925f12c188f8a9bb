package session

import (
	"context"
	"sync"

	"github.com/avolkov/hirelink/internal/logging"
	"github.com/avolkov/hirelink/internal/models"
)

// Login destinations per role class.
const (
	CandidateLoginPath = "/login"
	OrgLoginPath       = "/org/login"
)

// LoginPath returns the class-appropriate login location.
func LoginPath(class models.RoleClass) string {
	if class == models.RoleClassOrganization {
		return OrgLoginPath
	}
	return CandidateLoginPath
}

// State is the guard's lifecycle: Loading until the single identity check
// resolves, then exactly one of Authenticated or Unauthenticated.
type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "loading"
	}
}

// Navigator performs the redirect side channel. Replace must not extend
// history: after a Replace, back-navigation cannot return to the guarded
// surface. Callers must not assume the navigation completed synchronously.
type Navigator interface {
	Replace(path string)
}

// identityVerifier is the slice of Verifier the guard needs.
type identityVerifier interface {
	Verify(ctx context.Context, class models.RoleClass) (*models.Identity, error)
}

// Guard wraps one protected surface. Run performs a single identity check:
// on success it renders the children and reports the identity once; on any
// failure it issues exactly one Replace to the class login path and renders
// nothing. There is no retry; a new check requires a new Run after Reset
// (the re-mount analog).
type Guard struct {
	class    models.RoleClass
	verifier identityVerifier
	nav      Navigator
	render   func(*models.Identity)
	onLoaded func(*models.Identity)
	log      logging.Logger

	mu        sync.Mutex
	state     State
	done      bool
	cancelled bool
}

// NewGuard builds a guard. render is the protected subtree; onLoaded is the
// optional identity callback, invoked exactly once on success.
func NewGuard(class models.RoleClass, verifier identityVerifier, nav Navigator, render func(*models.Identity), onLoaded func(*models.Identity), log logging.Logger) *Guard {
	return &Guard{
		class:    class,
		verifier: verifier,
		nav:      nav,
		render:   render,
		onLoaded: onLoaded,
		log:      log,
	}
}

// Run performs the check and returns the resolved state. Calling Run again
// after it resolved is a no-op returning the settled state.
func (g *Guard) Run(ctx context.Context) State {
	g.mu.Lock()
	if g.done || g.cancelled {
		st := g.state
		g.mu.Unlock()
		return st
	}
	g.state = StateLoading
	g.mu.Unlock()

	id, err := g.verifier.Verify(ctx, g.class)

	g.mu.Lock()
	if g.cancelled {
		// The surface went away while the check was in flight; the late
		// result must not touch state or navigate.
		st := g.state
		g.mu.Unlock()
		g.log.Debug(ctx, "guard cancelled, dropping identity result", "class", g.class)
		return st
	}
	g.done = true

	if err != nil {
		g.state = StateUnauthenticated
		g.mu.Unlock()
		g.log.Info(ctx, "guard redirecting to login", "class", g.class, "reason", err)
		g.nav.Replace(LoginPath(g.class))
		return StateUnauthenticated
	}

	g.state = StateAuthenticated
	onLoaded := g.onLoaded
	g.onLoaded = nil // exactly once
	g.mu.Unlock()

	if onLoaded != nil {
		onLoaded(id)
	}
	if g.render != nil {
		g.render(id)
	}
	return StateAuthenticated
}

// Cancel marks the guard unmounted: a check still in flight is defensively
// ignored when it lands.
func (g *Guard) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelled = true
}

// State reports the current lifecycle state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}
