package gate

import (
	"context"

	"github.com/diewo77/go-invoices-client/models"
)

// Profile represents a role with a set of permissions.
type Profile interface {
	Name() string
	HasPermission(permission Permission) bool
	Permissions() []Permission
}

// roleGrants maps each role to its permission set. Roles arrive embedded in
// the authenticated user payload, so resolution is a map lookup; there is no
// remote profile store to consult.
var roleGrants = map[models.Role][]Permission{
	models.RoleAdmin: {PermissionSuperAdmin},
	models.RoleManager: {
		"admin:view",
		"invoice:*",
		"client:*",
		"user:view",
		"user:list",
	},
	models.RoleUser: {
		"invoice:*",
		"client:*",
	},
}

// ProfileFor resolves a role to its permission profile. Unknown roles get an
// empty profile that denies everything.
func ProfileFor(role models.Role) Profile {
	return &roleProfile{name: string(role), grants: roleGrants[role]}
}

type roleProfile struct {
	name   string
	grants []Permission
}

func (p *roleProfile) Name() string { return p.name }

// Permissions returns the profile's grants in declaration order.
func (p *roleProfile) Permissions() []Permission {
	out := make([]Permission, len(p.grants))
	copy(out, p.grants)
	return out
}

// HasPermission checks the requested permission against the profile's
// grants, with wildcard matching.
func (p *roleProfile) HasPermission(requested Permission) bool {
	for _, grant := range p.grants {
		if grant.Matches(requested) {
			return true
		}
	}
	return false
}

// RolePolicy authorizes actions on one resource type through the subject's
// role-derived profile.
type RolePolicy struct {
	resourceType string
}

// NewRolePolicy creates a policy for the given resource type.
func NewRolePolicy(resourceType string) *RolePolicy {
	return &RolePolicy{resourceType: resourceType}
}

// Can implements Policy for *models.User subjects.
func (p *RolePolicy) Can(_ context.Context, user *models.User, action Action, _ any) bool {
	if user == nil {
		return false
	}
	return ProfileFor(user.Role).HasPermission(NewPermission(p.resourceType, action))
}
