package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/avolkov/hirelink/internal/models"
	"github.com/avolkov/hirelink/internal/state"
)

// View shows or changes the selected page of the signed-in surface. With no
// argument it lists the surface's pages and the current selection; with one
// it selects that page. Selections on the candidate surface survive a
// restart; the role surfaces always open on their default page.
func (a *App) View(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	if a.identity.Class == models.RoleClassCandidate {
		return selectView(ctx, a.store.View, args, a.out)
	}

	switch a.currentRole() {
	case models.RoleAdmin:
		return selectView(ctx, a.store.AdminView, args, a.out)
	case models.RoleHR:
		return selectView(ctx, a.store.HRView, args, a.out)
	case models.RoleManager:
		return selectView(ctx, a.store.ManagerView, args, a.out)
	case models.RoleInvigilator:
		return selectView(ctx, a.store.InvigilatorView, args, a.out)
	default:
		fmt.Fprintln(a.out, "No surface for this role.")
		return nil
	}
}

func selectView[P ~string](ctx context.Context, store *state.ViewStore[P], args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintf(out, "Pages: %s\n", strings.Join(store.Pages(), ", "))
		fmt.Fprintf(out, "Current: %s\n", store.Current())
		return nil
	}
	if err := store.Select(ctx, P(args[0])); err != nil {
		fmt.Fprintf(out, "%s\n", err)
		return err
	}
	fmt.Fprintf(out, "Now viewing %s.\n", args[0])
	return nil
}

// SetTheme shows or switches the color theme. The switch is applied and
// persisted by the registered change effect, not here.
func (a *App) SetTheme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Theme: %s (light or dark)\n", a.store.Theme.Current())
		return nil
	}
	t, err := state.ParseTheme(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err)
		return err
	}
	return a.store.Theme.Set(t)
}
