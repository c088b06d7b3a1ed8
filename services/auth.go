package services

import (
	"context"

	"github.com/diewo77/go-invoices-client/httpx"
	"github.com/diewo77/go-invoices-client/models"
	"github.com/diewo77/go-invoices-client/validation"
)

// AuthService calls the authentication endpoints. Login and registration run
// without a bearer token; Me requires one.
type AuthService struct {
	api *httpx.Client
}

// Login exchanges credentials for a token and the authenticated user.
// Backend errors (wrong password, unknown user) propagate unchanged.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	var resp models.AuthResponse
	if err := s.api.Post(ctx, "/auth/login", req, &resp, httpx.SkipAuth()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account. Same response contract as Login; there is no
// separate email-verification gate.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	var resp models.AuthResponse
	if err := s.api.Post(ctx, "/auth/register", req, &resp, httpx.SkipAuth()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the user the current token belongs to.
func (s *AuthService) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.api.Get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
