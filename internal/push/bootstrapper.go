// Package push bootstraps real-time notification delivery: a background
// worker that polls the portal and prepends newly delivered records into the
// candidate notification store, plus a one-time permission prompt. Setup
// failures are logged and never crash or block the host application.
package push

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avolkov/hirelink/internal/logging"
	"github.com/avolkov/hirelink/internal/models"
	"github.com/avolkov/hirelink/internal/state"
	"github.com/avolkov/hirelink/internal/storage"
)

// Permission is the persisted answer to the notification prompt.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Source delivers the audience's notification list, newest first.
type Source interface {
	Notifications(ctx context.Context) ([]models.Notification, error)
}

// PromptFunc asks the user for notification permission.
type PromptFunc func(ctx context.Context) (bool, error)

// Bootstrapper wires delivery up once at application start. Start is
// idempotent: a completion flag makes repeat invocation a no-op.
type Bootstrapper struct {
	source   Source
	store    *state.NotificationStore
	settings storage.Repository
	prompt   PromptFunc
	log      logging.Logger

	pollInterval time.Duration
	promptDelay  time.Duration

	mu      sync.Mutex
	started bool
}

func NewBootstrapper(source Source, store *state.NotificationStore, settings storage.Repository, prompt PromptFunc, pollInterval, promptDelay time.Duration, log logging.Logger) *Bootstrapper {
	return &Bootstrapper{
		source:       source,
		store:        store,
		settings:     settings,
		prompt:       prompt,
		log:          log,
		pollInterval: pollInterval,
		promptDelay:  promptDelay,
	}
}

// Start registers the background delivery worker and schedules the one-time
// permission prompt. Unsupported configurations (no source or store) are
// logged and skipped.
func (b *Bootstrapper) Start(ctx context.Context) {
	b.mu.Lock()
	if b.started {
		b.mu.Unlock()
		return
	}
	b.started = true
	b.mu.Unlock()

	if b.source == nil || b.store == nil {
		b.log.Warn(ctx, "push notifications unsupported, skipping bootstrap")
		return
	}

	go b.deliver(ctx)
	go b.requestPermission(ctx)
	b.log.Info(ctx, "push delivery worker registered", "interval", b.pollInterval)
}

// deliver runs the poll loop: one initial full sync, then periodic fetches
// prepending records not seen before. Fetch failures are recorded on the
// store and retried on the next tick.
func (b *Bootstrapper) deliver(ctx context.Context) {
	defer func() {
		if p := recover(); p != nil {
			b.log.Error(ctx, "push delivery worker panicked", "panic", p)
		}
	}()

	seen := make(map[string]struct{})

	b.store.SetLoading(true)
	records, err := b.source.Notifications(ctx)
	b.store.SetLoading(false)
	if err != nil {
		b.store.SetError(err.Error())
		b.log.Warn(ctx, "initial notification sync failed", "error", err)
	} else {
		b.store.ReplaceAll(records)
		b.store.SetError("")
		for _, n := range records {
			seen[n.ID] = struct{}{}
		}
	}

	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			records, err := b.source.Notifications(ctx)
			if ctx.Err() != nil {
				// The application went away while the fetch was in flight.
				return
			}
			if err != nil {
				b.store.SetError(err.Error())
				b.log.Warn(ctx, "notification poll failed", "error", err)
				continue
			}
			b.store.SetError("")

			// Records arrive newest first; prepend the unseen ones oldest
			// first so the store stays in display order.
			for i := len(records) - 1; i >= 0; i-- {
				n := records[i]
				if _, ok := seen[n.ID]; ok {
					continue
				}
				seen[n.ID] = struct{}{}
				b.store.Prepend(n)
			}
		}
	}
}

// requestPermission waits out the paint delay, then prompts exactly once if
// the persisted state is still default. The answer is persisted so later
// sessions never prompt again.
func (b *Bootstrapper) requestPermission(ctx context.Context) {
	defer func() {
		if p := recover(); p != nil {
			b.log.Error(ctx, "permission prompt panicked", "panic", p)
		}
	}()

	if b.prompt == nil || b.settings == nil {
		return
	}

	select {
	case <-ctx.Done():
		return
	case <-time.After(b.promptDelay):
	}

	current, err := b.settings.Get(ctx, storage.KeyPushPermission)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		b.log.Warn(ctx, "reading push permission failed", "error", err)
		return
	}
	if err == nil && Permission(current) != PermissionDefault {
		return
	}

	granted, err := b.prompt(ctx)
	if err != nil {
		b.log.Warn(ctx, "permission prompt failed", "error", err)
		return
	}

	answer := PermissionDenied
	if granted {
		answer = PermissionGranted
	}
	if err := b.settings.Set(ctx, storage.KeyPushPermission, string(answer)); err != nil {
		b.log.Warn(ctx, "persisting push permission failed", "error", err)
	}
}
