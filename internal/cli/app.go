package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/avolkov/hirelink/internal/api"
	"github.com/avolkov/hirelink/internal/assets"
	"github.com/avolkov/hirelink/internal/config"
	"github.com/avolkov/hirelink/internal/logging"
	"github.com/avolkov/hirelink/internal/models"
	"github.com/avolkov/hirelink/internal/push"
	"github.com/avolkov/hirelink/internal/session"
	"github.com/avolkov/hirelink/internal/state"
	"github.com/avolkov/hirelink/internal/storage"
)

// App wires the portal client together: the HTTP API, the local settings
// database, the shared state stores and the session machinery. It also acts
// as the Navigator the route guard redirects through.
type App struct {
	cfg      *config.Config
	api      api.Client
	store    *state.Root
	settings storage.Repository
	db       *sql.DB
	verifier *session.Verifier
	push     *push.Bootstrapper
	uploader *assets.Uploader
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer

	identity *models.Identity
	location string
}

// NewApp builds a ready-to-run application from config. The settings
// database is created under cfg.DataDir if it does not exist yet.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	db, err := storage.Open(ctx, filepath.Join(cfg.DataDir, "hirelink.db"))
	if err != nil {
		return nil, fmt.Errorf("settings db: %w", err)
	}
	settings := storage.NewSQLiteRepository(db)

	client, err := api.NewHTTPClient(cfg.ServerBaseURL)
	if err != nil {
		db.Close()
		return nil, err
	}

	app := &App{
		cfg:      cfg,
		api:      client,
		store:    state.NewRoot(ctx, settings),
		settings: settings,
		db:       db,
		verifier: session.NewVerifier(client, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		location: session.CandidateLoginPath,
	}

	app.store.Theme.OnChange(app.applyTheme)

	if cfg.PushEnabled {
		app.push = push.NewBootstrapper(client, app.store.Notifications, settings,
			app.promptPushPermission, cfg.PushPollInterval, cfg.PushPromptDelay, log)
	}

	if cfg.Assets.AccountID != "" || cfg.Assets.Endpoint != "" {
		up, err := assets.NewUploader(ctx, assets.Config{
			AccountID:       cfg.Assets.AccountID,
			Endpoint:        cfg.Assets.Endpoint,
			Region:          cfg.Assets.Region,
			Bucket:          cfg.Assets.Bucket,
			AccessKeyID:     cfg.Assets.AccessKeyID,
			SecretAccessKey: cfg.Assets.SecretAccessKey,
		}, log)
		if err != nil {
			log.Warn(ctx, "asset uploads disabled", "error", err)
		} else {
			app.uploader = up
		}
	}

	return app, nil
}

// Replace implements session.Navigator. The guard calls it exactly once when
// a session check fails; the location swap discards any stale identity.
func (a *App) Replace(path string) {
	a.location = path
	a.identity = nil
	fmt.Fprintf(a.out, "Redirected to %s. Please log in.\n", path)
}

// Location returns the current virtual location of the shell.
func (a *App) Location() string {
	return a.location
}

// applyTheme persists the theme choice and repaints the prompt. Persistence
// lives here, outside the store, so the store itself stays storage-free.
func (a *App) applyTheme(t state.Theme) {
	ctx := context.Background()
	if err := a.settings.Set(ctx, storage.KeyTheme, string(t)); err != nil {
		a.log.Warn(ctx, "theme not persisted", "error", err)
	}
	fmt.Fprintf(a.out, "Theme set to %s.\n", t)
}

// promptPushPermission asks once whether background notification polling may
// run. The bootstrapper invokes it after the configured delay and persists
// the answer.
func (a *App) promptPushPermission(ctx context.Context) (bool, error) {
	return GetConfirm(a.reader, "Enable background notification updates?", a.out)
}

// Close releases the settings database. Background workers stop with the
// run context.
func (a *App) Close() error {
	return a.db.Close()
}
