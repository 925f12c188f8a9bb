package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avolkov/hirelink/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_RejectsBadURL(t *testing.T) {
	_, err := NewHTTPClient("not-a-url")
	require.Error(t, err)
}

func TestDo_SendsClientTypeHeader(t *testing.T) {
	var gotHeader string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Client-Type")
		_ = json.NewEncoder(w).Encode(IdentityResult{})
	}))

	_, err := c.Identity(context.Background(), models.RoleClassCandidate)
	require.NoError(t, err)
	require.Equal(t, "web", gotHeader)
}

func TestDo_CookiePersistsAcrossRequests(t *testing.T) {
	var gotCookie string
	mux := http.NewServeMux()
	mux.HandleFunc("/candidates/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "s3cr3t", Path: "/"})
		_ = json.NewEncoder(w).Encode(models.LoginResponse{Success: true})
	})
	mux.HandleFunc("/candidates/me", func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie("session"); err == nil {
			gotCookie = ck.Value
		}
		ok := true
		_ = json.NewEncoder(w).Encode(IdentityResult{Success: &ok})
	})
	c := newTestClient(t, mux)

	_, err := c.Login(context.Background(), models.LoginData{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	_, err = c.Identity(context.Background(), models.RoleClassCandidate)
	require.NoError(t, err)
	require.Equal(t, "s3cr3t", gotCookie)
}

func TestDo_MapsUnauthorized(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.Identity(context.Background(), models.RoleClassOrganization)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestDo_MapsTransportFailureToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // the address now refuses connections

	c, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Identity(context.Background(), models.RoleClassCandidate)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestDo_SurfacesServerMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "email already taken"})
	}))

	_, err := c.Register(context.Background(), models.RegisterData{Email: "a@b.c"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "email already taken")
}

func TestIdentity_UsesClassEndpoint(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(IdentityResult{})
	}))

	_, err := c.Identity(context.Background(), models.RoleClassOrganization)
	require.NoError(t, err)
	require.Equal(t, "/org/me", gotPath)

	_, err = c.Identity(context.Background(), models.RoleClassCandidate)
	require.NoError(t, err)
	require.Equal(t, "/candidates/me", gotPath)
}

func TestJobs_EncodesQueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(models.JobPage{})
	}))

	_, err := c.Jobs(context.Background(), models.JobQuery{
		Search:    "engineer",
		SortBy:    "createdAt",
		SortOrder: "desc",
		Page:      2,
		Limit:     20,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"engineer"}, gotQuery["search"])
	require.Equal(t, []string{"createdAt"}, gotQuery["sortBy"])
	require.Equal(t, []string{"desc"}, gotQuery["sortOrder"])
	require.Equal(t, []string{"2"}, gotQuery["page"])
	require.Equal(t, []string{"20"}, gotQuery["limit"])
}

func TestJobs_OmitsZeroValues(t *testing.T) {
	var gotRaw string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRaw = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(models.JobPage{})
	}))

	_, err := c.Jobs(context.Background(), models.JobQuery{})
	require.NoError(t, err)
	require.Empty(t, gotRaw)
}

func TestUpdateJob_RequiresID(t *testing.T) {
	c := newTestClient(t, http.NotFoundHandler())

	_, err := c.UpdateJob(context.Background(), models.Job{Title: "no id"})
	require.Error(t, err)
}

func TestMarkNotificationRead_EscapesID(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
	}))

	err := c.MarkNotificationRead(context.Background(), "n/1")
	require.NoError(t, err)
	require.Equal(t, "/candidates/notifications/n%2F1/read", gotPath)
}
