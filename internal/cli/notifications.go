package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/avolkov/hirelink/internal/api"
	"github.com/avolkov/hirelink/internal/models"
	"github.com/avolkov/hirelink/internal/state"
)

// Notifications lists the signed-in surface's notifications, unread first
// marked with an asterisk. The list is served from the store; pass "sync" to
// refetch from the server before printing.
func (a *App) Notifications(ctx context.Context, args []string) error {
	store := a.notificationStore()
	if store == nil {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	if len(args) > 0 && args[0] == "sync" {
		if err := a.syncNotifications(ctx); err != nil {
			fmt.Fprintf(a.out, "Sync failed: %s\n", err)
			return err
		}
	}

	records := store.Records()
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return nil
	}
	for _, n := range records {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s [%s] %s: %s\n", marker, n.ID, n.Title, n.Message)
	}
	fmt.Fprintf(a.out, "%d unread of %d\n", store.UnreadCount(), len(records))
	return nil
}

// MarkRead marks one notification read on the server and mirrors the change
// in the store. Marking an already-read record is a no-op on both sides.
func (a *App) MarkRead(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: read <id>")
		return nil
	}
	store := a.notificationStore()
	if store == nil {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	id := args[0]
	if err := a.api.MarkNotificationRead(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Mark read failed: %s\n", err)
		return err
	}
	store.MarkRead(id)
	if a.currentRole() == models.RoleAdmin {
		a.store.Broadcast.MarkRead(id)
	}
	return nil
}

// MarkAllRead marks every notification of the surface read.
func (a *App) MarkAllRead(ctx context.Context, args []string) error {
	store := a.notificationStore()
	if store == nil {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	if err := a.api.MarkAllNotificationsRead(ctx); err != nil {
		fmt.Fprintf(a.out, "Mark all read failed: %s\n", err)
		return err
	}
	store.MarkAllRead()
	if a.currentRole() == models.RoleAdmin {
		a.store.Broadcast.MarkAllRead()
	}
	return nil
}

// Broadcasts prints the admin broadcast ledger: the per-role breakdown, then
// the records passing the selected display filter.
func (a *App) Broadcasts(ctx context.Context, args []string) error {
	if a.currentRole() != models.RoleAdmin {
		fmt.Fprintln(a.out, "Admins only.")
		return nil
	}

	if len(args) > 0 && args[0] == "sync" {
		if err := a.syncBroadcasts(ctx); err != nil {
			fmt.Fprintf(a.out, "Sync failed: %s\n", err)
			return err
		}
	}

	breakdown := a.store.Broadcast.Breakdown()
	for _, role := range []models.OrgRole{models.RoleHR, models.RoleManager, models.RoleInvigilator} {
		stats := breakdown[role]
		fmt.Fprintf(a.out, "%s: %d total, %d unread\n", role, stats.Total, stats.Unread)
	}

	visible := a.store.Broadcast.Visible()
	fmt.Fprintf(a.out, "Showing %s (%d records)\n", a.store.Broadcast.SelectedRole(), len(visible))
	for _, b := range visible {
		marker := " "
		if !b.Read {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s [%s] to %s: %s\n", marker, b.ID, b.Recipient.Role, b.Message)
	}
	return nil
}

// Filter changes which recipient role the broadcast listing shows. The
// filter affects display only; counters keep covering every record.
func (a *App) Filter(ctx context.Context, args []string) error {
	if a.currentRole() != models.RoleAdmin {
		fmt.Fprintln(a.out, "Admins only.")
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Usage: filter <%s|%s|%s|%s>\n",
			state.FilterAll, models.RoleHR, models.RoleManager, models.RoleInvigilator)
		return nil
	}
	a.store.Broadcast.SelectRole(state.RoleFilter(strings.ToUpper(args[0])))
	fmt.Fprintf(a.out, "Filter: %s\n", a.store.Broadcast.SelectedRole())
	return nil
}

// Broadcast creates a new admin broadcast to one recipient role and prepends
// the created record to the ledger.
func (a *App) Broadcast(ctx context.Context, args []string) error {
	if a.currentRole() != models.RoleAdmin {
		fmt.Fprintln(a.out, "Admins only.")
		return nil
	}
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: broadcast <role> <message...>")
		return nil
	}

	role, err := models.ParseOrgRole(strings.ToUpper(args[0]))
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err)
		return err
	}

	created, err := a.api.CreateBroadcast(ctx, api.BroadcastData{
		Message: strings.Join(args[1:], " "),
		Role:    role,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Broadcast failed: %s\n", err)
		return err
	}
	a.store.Broadcast.Prepend(*created)
	fmt.Fprintf(a.out, "Broadcast %s sent to %s.\n", created.ID, role)
	return nil
}

// notificationStore picks the store of the signed-in surface, or nil when
// signed out.
func (a *App) notificationStore() *state.NotificationStore {
	if a.identity == nil {
		return nil
	}
	if a.identity.Class == models.RoleClassOrganization {
		return a.store.OrgNotifications
	}
	return a.store.Notifications
}
