package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diewo77/go-invoices-client/auth"
	"github.com/diewo77/go-invoices-client/httpx"
	"github.com/diewo77/go-invoices-client/models"
	"github.com/diewo77/go-invoices-client/services"
)

const (
	testEmail    = "a@b.com"
	testPassword = "secret123"
	testToken    = "valid-token"
)

// fakeBackend serves the auth endpoints plus one protected list endpoint.
func fakeBackend() *httptest.Server {
	user := models.User{ID: "u1", Email: testEmail, Name: "Alice", Role: models.RoleUser}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Email != testEmail || req.Password != testPassword {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(models.AuthResponse{AccessToken: testToken, TokenType: "bearer", User: user})
	})
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		json.NewDecoder(r.Body).Decode(&req)
		u := user
		u.Email = req.Email
		u.Name = req.Name
		json.NewEncoder(w).Encode(models.AuthResponse{AccessToken: testToken, TokenType: "bearer", User: u})
	})
	authed := func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer "+testToken
	}
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(user)
	})
	mux.HandleFunc("GET /invoices", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"invoices":[]}`))
	})
	return httptest.NewServer(mux)
}

func newSession(t *testing.T, url string, opts ...auth.Option) (*auth.Session, *services.Services, *httpx.Client) {
	t.Helper()
	api := httpx.New(url)
	svc := services.New(api)
	return auth.NewSession(api, svc.Auth, opts...), svc, api
}

func TestSession_StartsUnknown(t *testing.T) {
	srv := fakeBackend()
	defer srv.Close()
	sess, _, _ := newSession(t, srv.URL)
	if got := sess.Status(); got != auth.StatusUnknown {
		t.Errorf("Status() = %v, want unknown", got)
	}
}

func TestSession_InitWithoutToken(t *testing.T) {
	srv := fakeBackend()
	defer srv.Close()
	sess, _, _ := newSession(t, srv.URL)
	if got := sess.Init(context.Background()); got != auth.StatusAnonymous {
		t.Errorf("Init() = %v, want anonymous", got)
	}
	if sess.User() != nil {
		t.Error("anonymous session has a user")
	}
}

func TestSession_InitWithValidToken(t *testing.T) {
	srv := fakeBackend()
	defer srv.Close()
	sess, _, api := newSession(t, srv.URL)
	api.Tokens().SetToken(testToken)

	if got := sess.Init(context.Background()); got != auth.StatusAuthenticated {
		t.Fatalf("Init() = %v, want authenticated", got)
	}
	if u := sess.User(); u == nil || u.Email != testEmail {
		t.Errorf("User() = %+v, want email %s", u, testEmail)
	}
}

func TestSession_InitWithRejectedToken(t *testing.T) {
	srv := fakeBackend()
	defer srv.Close()
	sess, _, api := newSession(t, srv.URL)
	api.Tokens().SetToken("stale-token")

	if got := sess.Init(context.Background()); got != auth.StatusAnonymous {
		t.Fatalf("Init() = %v, want anonymous", got)
	}
	if _, ok := api.Tokens().Token(); ok {
		t.Error("rejected token not cleared")
	}
}

func TestSession_LoginSuccess(t *testing.T) {
	srv := fakeBackend()
	defer srv.Close()
	sess, svc, api := newSession(t, srv.URL)

	err := sess.Login(context.Background(), models.LoginRequest{Email: testEmail, Password: testPassword})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !sess.IsAuthenticated() {
		t.Error("session not authenticated after login")
	}
	if u := sess.User(); u == nil || u.Email != testEmail {
		t.Errorf("User() = %+v, want email %s", u, testEmail)
	}
	if tok, ok := api.Tokens().Token(); !ok || tok != testToken {
		t.Errorf("stored token = %q, %v", tok, ok)
	}
	// The issued token rides on the next authenticated call.
	if _, err := svc.Auth.Me(context.Background()); err != nil {
		t.Errorf("Me after login: %v", err)
	}
}

func TestSession_LoginInvalidCredentials(t *testing.T) {
	srv := fakeBackend()
	defer srv.Close()
	sess, _, _ := newSession(t, srv.URL)
	sess.Init(context.Background())

	err := sess.Login(context.Background(), models.LoginRequest{Email: testEmail, Password: "wrong-password"})
	var apiErr *httpx.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status < 400 {
		t.Errorf("Status = %d, want >= 400", apiErr.Status)
	}
	if sess.Status() != auth.StatusAnonymous {
		t.Errorf("Status() = %v, want anonymous", sess.Status())
	}
}

func TestSession_LoginRejectsInvalidPayloadLocally(t *testing.T) {
	srv := fakeBackend()
	defer srv.Close()
	sess, _, _ := newSession(t, srv.URL)

	err := sess.Login(context.Background(), models.LoginRequest{Email: "not-an-email", Password: ""})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if msg := err.Error(); !strings.Contains(msg, "email") && !strings.Contains(msg, "password") {
		t.Errorf("unexpected validation message %q", msg)
	}
}

func TestSession_Register(t *testing.T) {
	srv := fakeBackend()
	defer srv.Close()
	sess, _, api := newSession(t, srv.URL)

	err := sess.Register(context.Background(), models.RegisterRequest{
		Email:    "new@example.com",
		Password: "longenough",
		Name:     "New User",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !sess.IsAuthenticated() {
		t.Error("session not authenticated after register")
	}
	if u := sess.User(); u == nil || u.Email != "new@example.com" {
		t.Errorf("User() = %+v", u)
	}
	if _, ok := api.Tokens().Token(); !ok {
		t.Error("no token stored after register")
	}
}

func TestSession_LogoutIdempotent(t *testing.T) {
	srv := fakeBackend()
	defer srv.Close()
	sess, _, api := newSession(t, srv.URL)
	sess.Login(context.Background(), models.LoginRequest{Email: testEmail, Password: testPassword})

	sess.Logout()
	sess.Logout()
	if sess.Status() != auth.StatusAnonymous {
		t.Errorf("Status() = %v, want anonymous", sess.Status())
	}
	if sess.User() != nil {
		t.Error("user survived logout")
	}
	if _, ok := api.Tokens().Token(); ok {
		t.Error("token survived logout")
	}
}

func TestSession_RefreshUserFailureActsLikeLogout(t *testing.T) {
	srv := fakeBackend()
	defer srv.Close()
	var expired bool
	sess, _, api := newSession(t, srv.URL, auth.WithOnExpired(func() { expired = true }))
	sess.Login(context.Background(), models.LoginRequest{Email: testEmail, Password: testPassword})

	// Invalidate the token server-side by swapping the stored one.
	api.Tokens().SetToken("no-longer-valid")
	if err := sess.RefreshUser(context.Background()); err == nil {
		t.Fatal("expected refresh failure")
	}
	if sess.Status() != auth.StatusAnonymous {
		t.Errorf("Status() = %v, want anonymous", sess.Status())
	}
	if _, ok := api.Tokens().Token(); ok {
		t.Error("token survived failed refresh")
	}
	if !expired {
		t.Error("OnExpired not fired for a torn-down authenticated session")
	}
}

// A 401 on any endpoint, not just auth ones, tears the session down.
func TestSession_ExpiresOnAnyUnauthorized(t *testing.T) {
	srv := fakeBackend()
	defer srv.Close()
	var expired bool
	sess, svc, api := newSession(t, srv.URL, auth.WithOnExpired(func() { expired = true }))
	sess.Login(context.Background(), models.LoginRequest{Email: testEmail, Password: testPassword})

	api.Tokens().SetToken("garbage")
	if _, err := svc.Invoices.List(context.Background()); err == nil {
		t.Fatal("expected 401 from invoice list")
	}
	if sess.Status() != auth.StatusAnonymous {
		t.Errorf("Status() = %v, want anonymous", sess.Status())
	}
	if !expired {
		t.Error("OnExpired not fired")
	}
}

// A failed login attempt must not fire the expiry hook; the caller is already
// on the login flow.
func TestSession_FailedLoginDoesNotFireOnExpired(t *testing.T) {
	srv := fakeBackend()
	defer srv.Close()
	var expired bool
	sess, _, _ := newSession(t, srv.URL, auth.WithOnExpired(func() { expired = true }))
	sess.Init(context.Background())

	sess.Login(context.Background(), models.LoginRequest{Email: testEmail, Password: "wrong-password"})
	if expired {
		t.Error("OnExpired fired for a failed login")
	}
}
