package security

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
)

// Principal is the authenticated identity attached to a request.
type Principal struct {
	ID          primitive.ObjectID
	Role        models.UserRole
	DisplayName string
}

// AccessOptions tunes the shared ownership check per operation.
type AccessOptions struct {
	// AllowEditor grants access to editors in addition to the owner and
	// admins. Edit operations set it; destructive ones mostly do not.
	AllowEditor bool
}

// CanAccess decides whether caller may act on a resource owned by ownerID.
// Decision order, first match wins: admin → editor (when allowed) → owner.
// Every resource service goes through this one function so the policy
// cannot drift between endpoints.
func CanAccess(caller Principal, ownerID primitive.ObjectID, opts AccessOptions) bool {
	if caller.Role == models.RoleAdmin {
		return true
	}
	if opts.AllowEditor && caller.Role == models.RoleEditor {
		return true
	}
	return caller.ID == ownerID
}

// IsModerator reports whether the caller may use moderation-only
// operations (hide/unhide comments).
func IsModerator(caller Principal) bool {
	return caller.Role == models.RoleEditor || caller.Role == models.RoleAdmin
}
