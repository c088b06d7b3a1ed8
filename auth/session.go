// Package auth holds the client-side session: the current user, the token
// lifecycle, and the state machine the route guards evaluate. A Session is
// an explicit value injected into whatever owns the UI tree; there is no
// package-level session.
package auth

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/diewo77/go-invoices-client/httpx"
	"github.com/diewo77/go-invoices-client/models"
	"github.com/diewo77/go-invoices-client/services"
)

// Status is the session state.
//
//	StatusUnknown       before the first token check completes
//	StatusAnonymous     no token, or the token was rejected
//	StatusAuthenticated token present and validated at least once
type Status int

const (
	StatusUnknown Status = iota
	StatusAnonymous
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session tracks the currently logged-in user. It registers itself as the
// http client's 401 observer, so an expired token discovered anywhere flips
// the session to anonymous.
type Session struct {
	auth   *services.AuthService
	tokens httpx.TokenStore
	log    zerolog.Logger

	mu        sync.RWMutex
	status    Status
	user      *models.User
	onExpired func()
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a structured logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithOnExpired registers a callback fired when an authenticated session is
// torn down by a 401. Navigation to the login view belongs here, not in the
// HTTP layer.
func WithOnExpired(fn func()) Option {
	return func(s *Session) { s.onExpired = fn }
}

// NewSession builds a session over the given client and auth service and
// registers the 401 observer. The session starts in StatusUnknown until
// Init runs.
func NewSession(api *httpx.Client, auth *services.AuthService, opts ...Option) *Session {
	s := &Session{
		auth:   auth,
		tokens: api.Tokens(),
		log:    zerolog.Nop(),
		status: StatusUnknown,
	}
	for _, opt := range opts {
		opt(s)
	}
	api.SetOnUnauthorized(s.expire)
	return s
}

// Init resolves the initial state: no stored token means anonymous; a stored
// token is validated with a who-am-i call, and cleared if rejected. Returns
// the resulting status.
func (s *Session) Init(ctx context.Context) Status {
	if _, ok := s.tokens.Token(); !ok {
		s.setAnonymous()
		return StatusAnonymous
	}
	user, err := s.auth.Me(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("stored token rejected")
		_ = s.tokens.ClearToken()
		s.setAnonymous()
		return StatusAnonymous
	}
	s.setAuthenticated(user)
	return StatusAuthenticated
}

// Login exchanges credentials for a token. On success the token is stored
// and the session becomes authenticated; on failure the error propagates
// unchanged and the session stays as it was.
func (s *Session) Login(ctx context.Context, req models.LoginRequest) error {
	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		return err
	}
	if err := s.tokens.SetToken(resp.AccessToken); err != nil {
		return err
	}
	s.setAuthenticated(&resp.User)
	s.log.Info().Str("email", resp.User.Email).Msg("logged in")
	return nil
}

// Register creates an account and logs straight in, same contract as Login.
func (s *Session) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		return err
	}
	if err := s.tokens.SetToken(resp.AccessToken); err != nil {
		return err
	}
	s.setAuthenticated(&resp.User)
	s.log.Info().Str("email", resp.User.Email).Msg("registered")
	return nil
}

// Logout clears the token and user synchronously. No backend call is made;
// calling it twice ends in the same state as calling it once.
func (s *Session) Logout() {
	_ = s.tokens.ClearToken()
	s.setAnonymous()
}

// RefreshUser re-fetches the current user, picking up role changes. Any
// failure tears the session down like Logout; a transient network error is
// deliberately not distinguished from a 401.
func (s *Session) RefreshUser(ctx context.Context) error {
	user, err := s.auth.Me(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("refresh failed, logging out")
		s.Logout()
		return err
	}
	s.setAuthenticated(user)
	return nil
}

// Status returns the current session state.
func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// IsAuthenticated is a convenience for Status() == StatusAuthenticated.
func (s *Session) IsAuthenticated() bool {
	return s.Status() == StatusAuthenticated
}

// User returns a copy of the authenticated user, or nil.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) setAuthenticated(user *models.User) {
	s.mu.Lock()
	s.status = StatusAuthenticated
	s.user = user
	s.mu.Unlock()
}

func (s *Session) setAnonymous() {
	s.mu.Lock()
	s.status = StatusAnonymous
	s.user = nil
	s.mu.Unlock()
}

// expire runs on any 401. The token has already been cleared by the http
// client; the onExpired hook fires only when an authenticated session is
// lost, so a failed login attempt does not bounce the login view.
func (s *Session) expire() {
	s.mu.Lock()
	wasAuthenticated := s.status == StatusAuthenticated
	s.status = StatusAnonymous
	s.user = nil
	s.mu.Unlock()

	if wasAuthenticated {
		s.log.Info().Msg("session expired")
		if s.onExpired != nil {
			s.onExpired()
		}
	}
}
