// Package gate decides what the UI is allowed to render. It combines a
// Gate/Policy authorization model with the route guards evaluated before
// each view. Decisions are pure functions of session state: nothing here
// calls the backend, so a role change made elsewhere is only picked up when
// the session refreshes.
package gate

import "context"

// Policy answers authorization questions for one resource type. For list
// and create checks the resource argument is nil.
type Policy[U any] interface {
	Can(ctx context.Context, user U, action Action, resource any) bool
}

// Gate dispatches authorization checks to the policy registered for each
// resource type. U is the subject type; its zero value is always denied.
type Gate[U comparable] struct {
	policies map[string]Policy[U]
}

// NewGate creates an empty Gate ready to register policies.
func NewGate[U comparable]() *Gate[U] {
	return &Gate[U]{policies: make(map[string]Policy[U])}
}

// Register adds a policy for a resource type (e.g. "invoice"), replacing any
// existing one.
func (g *Gate[U]) Register(resourceType string, p Policy[U]) {
	g.policies[resourceType] = p
}

// Authorize checks one action against the registered policy. It returns
// ErrNoPolicyDefined when the resource type is unknown, ErrUnauthorized when
// the subject is the zero value or the policy denies, and nil otherwise.
func (g *Gate[U]) Authorize(ctx context.Context, user U, action Action, resourceType string, resource any) error {
	p, ok := g.policies[resourceType]
	if !ok {
		return ErrNoPolicyDefined
	}
	var zero U
	if user == zero || !p.Can(ctx, user, action, resource) {
		return ErrUnauthorized
	}
	return nil
}

// Can is Authorize collapsed to a bool, for call sites that only gate
// rendering and do not care why access was denied.
func (g *Gate[U]) Can(ctx context.Context, user U, action Action, resourceType string, resource any) bool {
	return g.Authorize(ctx, user, action, resourceType, resource) == nil
}
