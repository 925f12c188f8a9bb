package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/avolkov/hirelink/internal/models"
	"github.com/avolkov/hirelink/internal/session"
)

// getStatus renders the prompt status: identity, location, unread counter
// and theme.
func (a *App) getStatus() string {
	s := string(a.store.Theme.Current())
	if a.identity != nil {
		who := a.identity.Email
		if a.identity.Role != "" {
			who = who + "/" + string(a.identity.Role)
		}
		s = who + " " + s
		if n := a.unreadCount(); n > 0 {
			s = fmt.Sprintf("%s %d unread", s, n)
		}
	} else {
		s = a.location + " " + s
	}
	return "(" + s + ")"
}

func (a *App) unreadCount() int {
	if a.identity == nil {
		return 0
	}
	if a.identity.Class == models.RoleClassOrganization {
		return a.store.OrgNotifications.UnreadCount()
	}
	return a.store.Notifications.UnreadCount()
}

// Run resumes any existing session, then hands control to the REPL. Resume
// tries the candidate surface first and falls back to the organization one;
// holders of neither session land on the login page via the guard redirect.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the HireLink portal client (type 'help' for commands)")

	_ = a.openSurface(ctx, models.RoleClassCandidate)
	if a.identity == nil {
		_ = a.openSurface(ctx, models.RoleClassOrganization)
	}
	if a.identity == nil {
		a.location = session.CandidateLoginPath
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// printTokenInfo shows the display claims of an access token returned by a
// login. Parsing never blocks a successful login.
func (a *App) printTokenInfo(raw string) {
	info, err := session.ParseToken(raw)
	if err != nil {
		a.log.Debug(context.Background(), "access token not parseable", "error", err)
		return
	}
	if info.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "Session for %s.\n", info.Subject)
		return
	}
	fmt.Fprintf(a.out, "Session for %s, expires %s.\n", info.Subject, info.ExpiresAt.Format(time.RFC822))
}

// Status prints the confirmed identity and store counters.
func (a *App) Status(ctx context.Context, args []string) error {
	if a.identity == nil {
		fmt.Fprintf(a.out, "Not signed in. Location: %s\n", a.location)
		return nil
	}
	fmt.Fprintf(a.out, "Signed in as %s (%s)\n", a.identity.Email, a.identity.Class)
	if a.identity.Role != "" {
		fmt.Fprintf(a.out, "Role: %s\n", a.identity.Role)
	}
	fmt.Fprintf(a.out, "Unread notifications: %d\n", a.unreadCount())
	fmt.Fprintf(a.out, "Theme: %s\n", a.store.Theme.Current())
	return nil
}
