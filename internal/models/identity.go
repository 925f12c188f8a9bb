// Package models contains the client-side data types of the hirelink portal:
// identities, auth payloads, jobs, and notifications. The server owns all of
// these records; the client holds read-only copies replaced wholesale on
// re-verification or sync.
package models

import "fmt"

// RoleClass is a top-level principal category. Each class has its own
// identity endpoint and login destination.
type RoleClass string

const (
	RoleClassCandidate    RoleClass = "candidate"
	RoleClassOrganization RoleClass = "organization"
)

// OrgRole is an organization staff role. Kept in string form to match the
// wire format and simplify persistence.
type OrgRole string

const (
	RoleAdmin       OrgRole = "ADMIN"
	RoleHR          OrgRole = "HR"
	RoleInvigilator OrgRole = "INVIGILATOR"
	RoleManager     OrgRole = "MANAGER"
)

// ParseOrgRole validates a wire-level role string.
func ParseOrgRole(s string) (OrgRole, error) {
	switch OrgRole(s) {
	case RoleAdmin, RoleHR, RoleInvigilator, RoleManager:
		return OrgRole(s), nil
	}
	return "", fmt.Errorf("unknown organization role %q", s)
}

// Identity describes the signed-in principal as reported by the server.
// Role is empty for candidate principals; Class is filled in by the session
// verifier, not by the wire payload.
type Identity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      OrgRole   `json:"role,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Class     RoleClass `json:"-"`
}
