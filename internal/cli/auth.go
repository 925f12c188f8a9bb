package cli

import (
	"context"
	"fmt"

	"github.com/avolkov/hirelink/internal/models"
	"github.com/avolkov/hirelink/internal/session"
	"github.com/avolkov/hirelink/internal/state"
	"github.com/avolkov/hirelink/internal/storage"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for candidate account details and creates the account.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context, args []string) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	resp, err := a.api.Register(ctx, models.RegisterData{
		Name:     name,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}
	if !resp.Success {
		fmt.Fprintf(a.out, "Registration rejected: %s\n", resp.Message)
		return nil
	}
	fmt.Fprintln(a.out, "Account created. You can log in now.")
	return nil
}

// Login authenticates a candidate, then runs the route guard so the session
// is confirmed by the identity endpoint rather than trusted from the login
// response alone.
func (a *App) Login(ctx context.Context, args []string) error {
	return a.login(ctx, models.RoleClassCandidate)
}

// OrgLogin authenticates an organization member against /org/login.
func (a *App) OrgLogin(ctx context.Context, args []string) error {
	return a.login(ctx, models.RoleClassOrganization)
}

func (a *App) login(ctx context.Context, class models.RoleClass) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	data := models.LoginData{Email: email, Password: string(password)}

	var resp *models.LoginResponse
	if class == models.RoleClassOrganization {
		resp, err = a.api.OrgLogin(ctx, data)
	} else {
		resp, err = a.api.Login(ctx, data)
	}
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}
	if !resp.Success {
		fmt.Fprintf(a.out, "Login rejected: %s\n", resp.Message)
		return nil
	}
	if resp.Token != "" {
		a.printTokenInfo(resp.Token)
	}

	return a.openSurface(ctx, class)
}

// openSurface runs the route guard for the given role class. On success the
// surface renders and background delivery starts; on failure the guard has
// already redirected to the matching login page.
func (a *App) openSurface(ctx context.Context, class models.RoleClass) error {
	guard := session.NewGuard(class, a.verifier, a, a.render, a.onIdentityLoaded, a.log)
	if st := guard.Run(ctx); st != session.StateAuthenticated {
		return nil
	}
	if class == models.RoleClassCandidate && a.push != nil {
		a.push.Start(ctx)
	}
	return nil
}

// render is the guard's success callback: it records the confirmed identity,
// moves the shell onto the matching surface and syncs its notifications.
func (a *App) render(id *models.Identity) {
	a.identity = id
	if id.Class == models.RoleClassOrganization {
		a.location = "/org"
	} else {
		a.location = "/"
	}

	ctx := context.Background()
	if err := a.syncNotifications(ctx); err != nil {
		a.log.Warn(ctx, "notification sync failed", "error", err)
	}
}

// onIdentityLoaded fires exactly once per guard run.
func (a *App) onIdentityLoaded(id *models.Identity) {
	name := id.Name
	if name == "" {
		name = id.Email
	}
	if name == "" {
		name = "back"
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", name)
}

// Logout ends the session. The server call is best effort: a failure is
// logged and local cleanup proceeds anyway, resetting stores and removing
// the session-scoped settings in one transaction.
func (a *App) Logout(ctx context.Context, args []string) error {
	if err := a.api.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed", "error", err)
	}

	err := storage.WithTx(ctx, a.db, func(ctx context.Context, repo storage.Repository) error {
		if err := repo.Delete(ctx, storage.KeyCurrentView); err != nil {
			return err
		}
		return repo.Delete(ctx, storage.KeyPushPermission)
	})
	if err != nil {
		a.log.Warn(ctx, "local session cleanup failed", "error", err)
	}

	a.store.Notifications.ReplaceAll(nil)
	a.store.OrgNotifications.ReplaceAll(nil)
	a.store.Broadcast.ReplaceAll(nil)

	a.identity = nil
	a.Replace(session.CandidateLoginPath)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.identity != nil
}

// currentRole reports the organization role of the signed-in identity, or
// empty for candidates and signed-out shells.
func (a *App) currentRole() models.OrgRole {
	if a.identity == nil || a.identity.Class != models.RoleClassOrganization {
		return ""
	}
	role, err := models.ParseOrgRole(string(a.identity.Role))
	if err != nil {
		return ""
	}
	return role
}

// syncNotifications brings the surface's notification store up to date after
// a render. Admins additionally load the broadcast ledger.
func (a *App) syncNotifications(ctx context.Context) error {
	if a.identity == nil {
		return nil
	}

	if a.identity.Class == models.RoleClassCandidate {
		return syncInto(ctx, a.store.Notifications, a.api.Notifications)
	}

	if err := syncInto(ctx, a.store.OrgNotifications, a.api.OrgNotifications); err != nil {
		return err
	}
	if a.currentRole() == models.RoleAdmin {
		return a.syncBroadcasts(ctx)
	}
	return nil
}

func syncInto(ctx context.Context, store *state.NotificationStore, fetch func(context.Context) ([]models.Notification, error)) error {
	store.SetLoading(true)
	records, err := fetch(ctx)
	store.SetLoading(false)
	if err != nil {
		store.SetError(err.Error())
		return err
	}
	store.ReplaceAll(records)
	store.SetError("")
	return nil
}

func (a *App) syncBroadcasts(ctx context.Context) error {
	a.store.Broadcast.SetLoading(true)
	records, err := a.api.BroadcastNotifications(ctx)
	a.store.Broadcast.SetLoading(false)
	if err != nil {
		a.store.Broadcast.SetError(err.Error())
		return err
	}
	a.store.Broadcast.ReplaceAll(records)
	a.store.Broadcast.SetError("")
	return nil
}
