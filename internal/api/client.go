// Package api wraps the hirelink portal's REST endpoints. Every request is
// sent with the shared credential cookie jar and a header identifying this
// client as a web client; responses are decoded into the closed types in
// internal/models.
package api

import (
	"context"

	"github.com/avolkov/hirelink/internal/models"
)

// IdentityResult is the raw shape of the identity endpoints: {user?, success?}.
// Both pointers nil means the server reported nothing usable; interpretation
// is left to the session verifier.
type IdentityResult struct {
	User    *models.Identity `json:"user,omitempty"`
	Success *bool            `json:"success,omitempty"`
}

// BroadcastData is the request body for creating an admin broadcast.
type BroadcastData struct {
	Title     string         `json:"title,omitempty"`
	Message   string         `json:"message"`
	Type      string         `json:"type,omitempty"`
	Role      models.OrgRole `json:"role"`
	VisibleAt string         `json:"visible_at,omitempty"`
}

// Client is the portal API surface used by the rest of the client.
type Client interface {
	// Identity queries the role-class identity endpoint:
	// GET /candidates/me or GET /org/me.
	Identity(ctx context.Context, class models.RoleClass) (*IdentityResult, error)

	// Candidate surface.
	Login(ctx context.Context, data models.LoginData) (*models.LoginResponse, error)
	Register(ctx context.Context, data models.RegisterData) (*models.RegisterResponse, error)
	Logout(ctx context.Context) error
	Notifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error

	// Organization surface.
	OrgLogin(ctx context.Context, data models.LoginData) (*models.LoginResponse, error)
	OrgNotifications(ctx context.Context) ([]models.Notification, error)
	BroadcastNotifications(ctx context.Context) ([]models.BroadcastNotification, error)
	CreateBroadcast(ctx context.Context, data BroadcastData) (*models.BroadcastNotification, error)
	Jobs(ctx context.Context, q models.JobQuery) (*models.JobPage, error)
	CreateJob(ctx context.Context, job models.Job) (*models.Job, error)
	UpdateJob(ctx context.Context, job models.Job) (*models.Job, error)
	DeleteJob(ctx context.Context, id string) error
}
