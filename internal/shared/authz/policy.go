// Package authz holds the single ownership policy applied to every
// protected resource: admins may act on anything, everyone else only on
// resources they own.
package authz

// Roles a user account can hold. Lawyer currently has no access beyond
// plain ownership.
const (
	RoleUser   = "user"
	RoleLawyer = "lawyer"
	RoleAdmin  = "admin"
)

// Principal is the authenticated identity making a request.
type Principal struct {
	ID   string
	Role string
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// CanAccess reports whether the principal may read, modify, or attach to a
// resource owned by ownerID.
func CanAccess(p Principal, ownerID string) bool {
	if p.IsAdmin() {
		return true
	}
	return p.ID != "" && p.ID == ownerID
}

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleLawyer, RoleAdmin:
		return true
	}
	return false
}
