package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avolkov/hirelink/internal/api"
	"github.com/avolkov/hirelink/internal/logging"
	"github.com/avolkov/hirelink/internal/models"
)

func testLogger() logging.Logger {
	return logging.New(io.Discard, slog.LevelError)
}

// fakeIdentityClient implements IdentityClient for verifier tests.
type fakeIdentityClient struct {
	res       *api.IdentityResult
	err       error
	lastClass models.RoleClass
}

func (f *fakeIdentityClient) Identity(_ context.Context, class models.RoleClass) (*api.IdentityResult, error) {
	f.lastClass = class
	return f.res, f.err
}

func boolPtr(v bool) *bool { return &v }

func TestVerify_TransportFailureIsUnauthenticated(t *testing.T) {
	f := &fakeIdentityClient{err: api.ErrUnavailable}
	v := NewVerifier(f, testLogger())

	_, err := v.Verify(context.Background(), models.RoleClassCandidate)
	require.ErrorIs(t, err, ErrUnauthenticated)
	require.Equal(t, models.RoleClassCandidate, f.lastClass)
}

func TestVerify_ExplicitFailureFlag(t *testing.T) {
	f := &fakeIdentityClient{res: &api.IdentityResult{Success: boolPtr(false)}}
	v := NewVerifier(f, testLogger())

	_, err := v.Verify(context.Background(), models.RoleClassCandidate)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestVerify_EmptyResponseIsUnauthenticated(t *testing.T) {
	f := &fakeIdentityClient{res: &api.IdentityResult{}}
	v := NewVerifier(f, testLogger())

	_, err := v.Verify(context.Background(), models.RoleClassCandidate)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestVerify_CandidateSuccess(t *testing.T) {
	f := &fakeIdentityClient{res: &api.IdentityResult{
		User:    &models.Identity{ID: "c1", Name: "Ada", Email: "ada@example.org"},
		Success: boolPtr(true),
	}}
	v := NewVerifier(f, testLogger())

	id, err := v.Verify(context.Background(), models.RoleClassCandidate)
	require.NoError(t, err)
	require.Equal(t, "c1", id.ID)
	require.Equal(t, models.RoleClassCandidate, id.Class)
	require.Empty(t, id.Role)
}

func TestVerify_SuccessFlagWithoutUser(t *testing.T) {
	f := &fakeIdentityClient{res: &api.IdentityResult{Success: boolPtr(true)}}
	v := NewVerifier(f, testLogger())

	id, err := v.Verify(context.Background(), models.RoleClassCandidate)
	require.NoError(t, err)
	require.Equal(t, models.RoleClassCandidate, id.Class)
}

func TestVerify_OrgRequiresKnownRole(t *testing.T) {
	tests := []struct {
		name string
		role models.OrgRole
		ok   bool
	}{
		{"admin", models.RoleAdmin, true},
		{"hr", models.RoleHR, true},
		{"manager", models.RoleManager, true},
		{"invigilator", models.RoleInvigilator, true},
		{"unknown role rejected", models.OrgRole("SUPERUSER"), false},
		{"missing role rejected", models.OrgRole(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeIdentityClient{res: &api.IdentityResult{
				User:    &models.Identity{ID: "u1", Role: tt.role},
				Success: boolPtr(true),
			}}
			id, err := NewVerifier(f, testLogger()).Verify(context.Background(), models.RoleClassOrganization)
			if !tt.ok {
				require.ErrorIs(t, err, ErrUnauthenticated)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.role, id.Role)
			require.Equal(t, models.RoleClassOrganization, id.Class)
		})
	}
}

func TestVerify_WrapsUnderlyingError(t *testing.T) {
	underlying := errors.New("boom")
	f := &fakeIdentityClient{err: underlying}
	_, err := NewVerifier(f, testLogger()).Verify(context.Background(), models.RoleClassCandidate)
	require.ErrorIs(t, err, ErrUnauthenticated)
	require.Contains(t, err.Error(), "boom")
}
