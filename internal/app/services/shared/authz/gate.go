package authz

import (
	"casalist-service/internal/app/models"
	"casalist-service/internal/pkg/constvars"
)

// Principal is the authenticated actor of the current request.
type Principal struct {
	ID   string
	Role string
}

func (p Principal) IsAdmin() bool {
	return p.Role == constvars.RoleAdmin
}

// Owned is implemented by every record that belongs to a single user.
// Contacts do not implement it directly; their owner resolves through the
// owning property.
type Owned interface {
	OwnerID() string
}

// FromSession maps a stored session onto a Principal.
func FromSession(session *models.Session) Principal {
	return Principal{
		ID:   session.UserID,
		Role: session.RoleName,
	}
}

// AllowsResource reports whether the principal may mutate or privately read
// the given record. Administrators pass unconditionally; everyone else must
// own the record.
func AllowsResource(principal Principal, resource Owned) bool {
	if principal.IsAdmin() {
		return true
	}
	return principal.ID == resource.OwnerID()
}

// AllowsUserScope reports whether the principal may read records scoped to
// the given user, such as the nested /users/{id} views.
func AllowsUserScope(principal Principal, userID string) bool {
	if principal.IsAdmin() {
		return true
	}
	return principal.ID == userID
}

// AllowsAdmin is the coarse gate for admin-only aggregate endpoints.
func AllowsAdmin(principal Principal) bool {
	return principal.IsAdmin()
}
