package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/avolkov/hirelink/internal/models"
)

func (c *HTTPClient) OrgLogin(ctx context.Context, data models.LoginData) (*models.LoginResponse, error) {
	var res models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/org/login", nil, data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) OrgNotifications(ctx context.Context) ([]models.Notification, error) {
	var res notificationList
	if err := c.do(ctx, http.MethodGet, "/org/notifications", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Notifications, nil
}

type broadcastList struct {
	Notifications []models.BroadcastNotification `json:"notifications"`
}

func (c *HTTPClient) BroadcastNotifications(ctx context.Context) ([]models.BroadcastNotification, error) {
	var res broadcastList
	if err := c.do(ctx, http.MethodGet, "/org/notifications/broadcast", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Notifications, nil
}

func (c *HTTPClient) CreateBroadcast(ctx context.Context, data BroadcastData) (*models.BroadcastNotification, error) {
	var res models.BroadcastNotification
	if err := c.do(ctx, http.MethodPost, "/org/notifications/broadcast", nil, data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// jobQueryValues encodes the listing filters; zero values are omitted.
func jobQueryValues(q models.JobQuery) url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		v.Set("sortOrder", q.SortOrder)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

func (c *HTTPClient) Jobs(ctx context.Context, q models.JobQuery) (*models.JobPage, error) {
	var res models.JobPage
	if err := c.do(ctx, http.MethodGet, "/org/jobs", jobQueryValues(q), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) CreateJob(ctx context.Context, job models.Job) (*models.Job, error) {
	var res models.Job
	if err := c.do(ctx, http.MethodPost, "/org/jobs", nil, job, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UpdateJob(ctx context.Context, job models.Job) (*models.Job, error) {
	if job.ID == "" {
		return nil, fmt.Errorf("update job: missing id")
	}
	var res models.Job
	path := "/org/jobs/" + url.PathEscape(job.ID)
	if err := c.do(ctx, http.MethodPut, path, nil, job, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) DeleteJob(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/org/jobs/"+url.PathEscape(id), nil, nil, nil)
}
