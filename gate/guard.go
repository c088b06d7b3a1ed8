package gate

import (
	"context"

	"github.com/diewo77/go-invoices-client/auth"
	"github.com/diewo77/go-invoices-client/models"
)

// DecisionKind is the outcome of a guard check.
type DecisionKind int

const (
	// DecisionPending means the session state is still unknown; render a
	// loading placeholder, never redirect early.
	DecisionPending DecisionKind = iota
	// DecisionAllow means the view may render.
	DecisionAllow
	// DecisionRedirect means navigation to Target is required.
	DecisionRedirect
)

// Decision is a guard outcome plus redirect target when applicable.
type Decision struct {
	Kind   DecisionKind
	Target string
}

// Allowed is a convenience for Kind == DecisionAllow.
func (d Decision) Allowed() bool { return d.Kind == DecisionAllow }

// SessionState is the slice of auth.Session the guards need.
type SessionState interface {
	Status() auth.Status
	User() *models.User
}

// Guard evaluates route guards against a session. Decisions are computed on
// each call; a role changed mid-session is only seen after the caller
// refreshes the session (accepted stale-role window).
type Guard struct {
	gate      *Gate[*models.User]
	loginPath string
	homePath  string
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithPaths overrides the login and authenticated-landing targets.
func WithPaths(login, home string) GuardOption {
	return func(g *Guard) {
		g.loginPath = login
		g.homePath = home
	}
}

// NewGuard builds a guard with role policies registered for the admin area
// and the primary resources.
func NewGuard(opts ...GuardOption) *Guard {
	g := &Guard{
		gate:      NewGate[*models.User](),
		loginPath: "/login",
		homePath:  "/dashboard",
	}
	for _, opt := range opts {
		opt(g)
	}
	for _, resource := range []string{"admin", "invoice", "client", "user"} {
		g.gate.Register(resource, NewRolePolicy(resource))
	}
	return g
}

// RequireAuth gates views that need any authenticated user.
func (g *Guard) RequireAuth(sess SessionState) Decision {
	switch sess.Status() {
	case auth.StatusUnknown:
		return Decision{Kind: DecisionPending}
	case auth.StatusAuthenticated:
		return Decision{Kind: DecisionAllow}
	default:
		return Decision{Kind: DecisionRedirect, Target: g.loginPath}
	}
}

// RequireAdminArea gates the admin area. Non-strict admits admin and
// manager; strict admits admin only. Insufficient role redirects to the
// authenticated landing view, not to login.
func (g *Guard) RequireAdminArea(sess SessionState, strict bool) Decision {
	switch sess.Status() {
	case auth.StatusUnknown:
		return Decision{Kind: DecisionPending}
	case auth.StatusAnonymous:
		return Decision{Kind: DecisionRedirect, Target: g.loginPath}
	}
	action := ActionView
	if strict {
		action = ActionManage
	}
	if !g.gate.Can(context.Background(), sess.User(), action, "admin", nil) {
		return Decision{Kind: DecisionRedirect, Target: g.homePath}
	}
	return Decision{Kind: DecisionAllow}
}

// Can exposes resource-level checks for UI affordances, e.g. whether to show
// the role-edit control.
func (g *Guard) Can(user *models.User, action Action, resourceType string) bool {
	return g.gate.Can(context.Background(), user, action, resourceType, nil)
}
