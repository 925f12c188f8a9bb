package state

import (
	"context"

	"github.com/avolkov/hirelink/internal/storage"
)

// Root is the application-wide state root: one explicit, constructed object
// composing every store, passed to the shell at startup. Stores are never
// reached through ambient globals.
type Root struct {
	// View selection, one store per surface. Only the generic store persists.
	View            *ViewStore[Page]
	AdminView       *ViewStore[AdminPage]
	HRView          *ViewStore[HRPage]
	ManagerView     *ViewStore[ManagerPage]
	InvigilatorView *ViewStore[InvigilatorPage]

	// Notifications per audience.
	Notifications    *NotificationStore // candidate
	OrgNotifications *NotificationStore // organization self
	Broadcast        *BroadcastStore    // organization admin

	Theme *ThemeStore
}

// NewRoot builds every store, seeding the persisted ones (generic view,
// theme) from the settings repository.
func NewRoot(ctx context.Context, repo storage.Repository) *Root {
	initialTheme := ThemeLight
	if v, err := repo.Get(ctx, storage.KeyTheme); err == nil {
		if t, err := ParseTheme(v); err == nil {
			initialTheme = t
		}
	}

	return &Root{
		View:             NewGenericView(ctx, repo),
		AdminView:        NewAdminView(),
		HRView:           NewHRView(),
		ManagerView:      NewManagerView(),
		InvigilatorView:  NewInvigilatorView(),
		Notifications:    NewNotificationStore(),
		OrgNotifications: NewNotificationStore(),
		Broadcast:        NewBroadcastStore(),
		Theme:            NewThemeStore(initialTheme),
	}
}
