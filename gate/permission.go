package gate

import "strings"

// Permission names an allowed action on a resource type, in
// "resource:action" form (e.g. "invoice:view", "user:manage").
type Permission string

// WildcardAll in the action position grants every action on the resource.
const WildcardAll = "*"

// PermissionSuperAdmin grants everything on everything.
const PermissionSuperAdmin Permission = "*:*"

// NewPermission builds a permission from resource type and action.
func NewPermission(resourceType string, action Action) Permission {
	return Permission(resourceType + ":" + string(action))
}

// Parse splits the permission into its resource type and action. A string
// without a separator yields two empties.
func (p Permission) Parse() (resourceType string, action Action) {
	res, act, ok := strings.Cut(string(p), ":")
	if !ok {
		return "", ""
	}
	return res, Action(act)
}

// Matches reports whether a grant of p covers the requested permission.
// PermissionSuperAdmin covers everything; "invoice:*" covers every invoice
// action; otherwise the permissions must be equal.
func (p Permission) Matches(requested Permission) bool {
	if p == PermissionSuperAdmin || p == requested {
		return true
	}
	res, act := p.Parse()
	if act != WildcardAll {
		return false
	}
	reqRes, _ := requested.Parse()
	return res == reqRes
}
