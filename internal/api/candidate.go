package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/avolkov/hirelink/internal/models"
)

// Identity issues the identity check for the given role class. The raw
// {user?, success?} shape is returned as-is; the session verifier decides
// what it means.
func (c *HTTPClient) Identity(ctx context.Context, class models.RoleClass) (*IdentityResult, error) {
	path := "/candidates/me"
	if class == models.RoleClassOrganization {
		path = "/org/me"
	}

	var res IdentityResult
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Login(ctx context.Context, data models.LoginData) (*models.LoginResponse, error) {
	var res models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/candidates/login", nil, data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, data models.RegisterData) (*models.RegisterResponse, error) {
	var res models.RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/candidates/register", nil, data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Logout is best-effort: the caller navigates to login regardless of the
// outcome, so the error is informational only.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/candidates/logout", nil, nil, nil)
}

// notificationList is the portal's list envelope.
type notificationList struct {
	Notifications []models.Notification `json:"notifications"`
}

func (c *HTTPClient) Notifications(ctx context.Context) ([]models.Notification, error) {
	var res notificationList
	if err := c.do(ctx, http.MethodGet, "/candidates/notifications", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Notifications, nil
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, id string) error {
	path := fmt.Sprintf("/candidates/notifications/%s/read", url.PathEscape(id))
	return c.do(ctx, http.MethodPut, path, nil, nil, nil)
}

func (c *HTTPClient) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/candidates/notifications/read-all", nil, nil, nil)
}
