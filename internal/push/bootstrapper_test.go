package push

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avolkov/hirelink/internal/logging"
	"github.com/avolkov/hirelink/internal/models"
	"github.com/avolkov/hirelink/internal/state"
	"github.com/avolkov/hirelink/internal/storage"
)

func testLogger() logging.Logger {
	return logging.New(io.Discard, slog.LevelError)
}

var pushDBCounter int

func settingsRepo(t *testing.T) storage.Repository {
	t.Helper()
	pushDBCounter++
	dsn := fmt.Sprintf("file:pushtest%d?mode=memory&cache=shared", pushDBCounter)
	db, err := storage.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewSQLiteRepository(db)
}

// fakeSource returns scripted pages: the first call gets pages[0], the second
// pages[1], and so on; the last page repeats.
type fakeSource struct {
	mu    sync.Mutex
	pages [][]models.Notification
	err   error
	calls int
}

func (f *fakeSource) Notifications(context.Context) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	idx := f.calls - 1
	if idx >= len(f.pages) {
		idx = len(f.pages) - 1
	}
	return append([]models.Notification(nil), f.pages[idx]...), nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func note(id string) models.Notification {
	return models.Notification{ID: id, Message: "m" + id}
}

func TestStart_InitialSyncReplacesAll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := &fakeSource{pages: [][]models.Notification{{note("b"), note("a")}}}
	store := state.NewNotificationStore()
	b := NewBootstrapper(src, store, settingsRepo(t), nil, time.Hour, time.Hour, testLogger())

	b.Start(ctx)

	require.Eventually(t, func() bool {
		return len(store.Records()) == 2
	}, time.Second, 5*time.Millisecond)
	recs := store.Records()
	require.Equal(t, "b", recs[0].ID)
	require.Equal(t, 2, store.UnreadCount())
}

func TestStart_Idempotent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := &fakeSource{pages: [][]models.Notification{{note("a")}}}
	store := state.NewNotificationStore()
	b := NewBootstrapper(src, store, settingsRepo(t), nil, time.Hour, time.Hour, testLogger())

	b.Start(ctx)
	b.Start(ctx)
	b.Start(ctx)

	require.Eventually(t, func() bool { return src.callCount() >= 1 }, time.Second, 5*time.Millisecond)
	// Only one worker: exactly one initial sync on an hour-long interval.
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 1, src.callCount())
}

func TestDeliver_PrependsOnlyNewRecords(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := &fakeSource{pages: [][]models.Notification{
		{note("b"), note("a")},
		{note("c"), note("b"), note("a")},
	}}
	store := state.NewNotificationStore()
	b := NewBootstrapper(src, store, settingsRepo(t), nil, 10*time.Millisecond, time.Hour, testLogger())

	b.Start(ctx)

	require.Eventually(t, func() bool {
		return len(store.Records()) == 3
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, "c", store.Records()[0].ID)
	require.Equal(t, 3, store.UnreadCount())
}

func TestDeliver_FetchFailureSetsErrorAndRecovers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := &fakeSource{err: errors.New("gateway down")}
	store := state.NewNotificationStore()
	b := NewBootstrapper(src, store, settingsRepo(t), nil, 10*time.Millisecond, time.Hour, testLogger())

	b.Start(ctx)

	require.Eventually(t, func() bool {
		return store.Err() == "gateway down"
	}, time.Second, 5*time.Millisecond)

	src.mu.Lock()
	src.err = nil
	src.pages = [][]models.Notification{{note("a")}}
	src.mu.Unlock()

	require.Eventually(t, func() bool {
		return store.Err() == "" && len(store.Records()) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestStart_UnsupportedIsNoop(t *testing.T) {
	b := NewBootstrapper(nil, nil, nil, nil, time.Hour, time.Hour, testLogger())
	b.Start(context.Background()) // must not panic or spin anything up
}

func TestPermission_PromptedOnceAndPersisted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := settingsRepo(t)
	var prompts int
	prompt := func(context.Context) (bool, error) {
		prompts++
		return true, nil
	}
	src := &fakeSource{pages: [][]models.Notification{{}}}
	b := NewBootstrapper(src, state.NewNotificationStore(), repo, prompt, time.Hour, time.Millisecond, testLogger())

	b.Start(ctx)

	require.Eventually(t, func() bool {
		v, err := repo.Get(context.Background(), storage.KeyPushPermission)
		return err == nil && v == string(PermissionGranted)
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, 1, prompts)
}

func TestPermission_SkippedWhenAlreadyAnswered(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := settingsRepo(t)
	require.NoError(t, repo.Set(ctx, storage.KeyPushPermission, string(PermissionDenied)))

	var prompts int
	prompt := func(context.Context) (bool, error) {
		prompts++
		return true, nil
	}
	src := &fakeSource{pages: [][]models.Notification{{}}}
	b := NewBootstrapper(src, state.NewNotificationStore(), repo, prompt, time.Hour, time.Millisecond, testLogger())

	b.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	require.Zero(t, prompts)

	v, err := repo.Get(ctx, storage.KeyPushPermission)
	require.NoError(t, err)
	require.Equal(t, string(PermissionDenied), v)
}

func TestPermission_PromptFailureIsNonFatal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := settingsRepo(t)
	prompt := func(context.Context) (bool, error) {
		return false, errors.New("tty unavailable")
	}
	src := &fakeSource{pages: [][]models.Notification{{note("a")}}}
	store := state.NewNotificationStore()
	b := NewBootstrapper(src, store, repo, prompt, time.Hour, time.Millisecond, testLogger())

	b.Start(ctx)

	// Delivery keeps working and no permission is persisted.
	require.Eventually(t, func() bool {
		return len(store.Records()) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	_, err := repo.Get(ctx, storage.KeyPushPermission)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
