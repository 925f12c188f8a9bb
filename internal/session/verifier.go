// Package session implements the client's authentication gating: the
// verifier that turns an identity-endpoint response into a definite verdict,
// and the route guard that renders a protected surface or redirects to login.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkov/hirelink/internal/api"
	"github.com/avolkov/hirelink/internal/logging"
	"github.com/avolkov/hirelink/internal/models"
)

// ErrUnauthenticated is the single verdict for every failure mode of an
// identity check: transport errors, timeouts, explicit {success:false}, a
// response with neither user nor success, or a malformed identity.
var ErrUnauthenticated = errors.New("unauthenticated")

// IdentityClient is the slice of the API the verifier needs.
type IdentityClient interface {
	Identity(ctx context.Context, class models.RoleClass) (*api.IdentityResult, error)
}

// Verifier queries the class-appropriate identity endpoint and normalizes the
// loosely-shaped {user?, success?} answer into a closed Identity. Loose or
// unknown shapes are rejected here; nothing untyped propagates inward.
type Verifier struct {
	client IdentityClient
	log    logging.Logger
}

func NewVerifier(client IdentityClient, log logging.Logger) *Verifier {
	return &Verifier{client: client, log: log}
}

// Verify returns the authenticated identity, or ErrUnauthenticated.
func (v *Verifier) Verify(ctx context.Context, class models.RoleClass) (*models.Identity, error) {
	res, err := v.client.Identity(ctx, class)
	if err != nil {
		v.log.Debug(ctx, "identity check failed", "class", class, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	if res.Success != nil && !*res.Success {
		return nil, fmt.Errorf("%w: server reported failure", ErrUnauthenticated)
	}
	if res.User == nil && res.Success == nil {
		return nil, fmt.Errorf("%w: response carries neither user nor success", ErrUnauthenticated)
	}

	id := res.User
	if id == nil {
		// Success flag without a profile: authenticated, minimal identity.
		id = &models.Identity{}
	}

	if class == models.RoleClassOrganization {
		role, err := models.ParseOrgRole(string(id.Role))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
		}
		id.Role = role
	} else {
		// Candidate identities carry no organization role.
		id.Role = ""
	}
	id.Class = class

	return id, nil
}
