package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/diewo77/go-invoices-client/httpx"
	"github.com/diewo77/go-invoices-client/models"
	"github.com/diewo77/go-invoices-client/validation"
)

// AdminService calls the admin/manager-only endpoints. Access control is the
// backend's job; the gate package only decides what to render.
type AdminService struct {
	api *httpx.Client
}

// Stats fetches the system-wide aggregate projection.
func (s *AdminService) Stats(ctx context.Context) (*models.SystemStats, error) {
	var stats models.SystemStats
	if err := s.api.Get(ctx, "/admin/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Users lists all users with their invoice aggregates. A limit of 0 fetches
// everything.
func (s *AdminService) Users(ctx context.Context, limit int) (*models.UserList, error) {
	endpoint := "/admin/users"
	if limit > 0 {
		endpoint = fmt.Sprintf("%s?limit=%d", endpoint, limit)
	}
	var list models.UserList
	if err := s.api.Get(ctx, endpoint, &list); err != nil {
		return nil, err
	}
	if list.Users == nil {
		list.Users = []models.UserWithStats{}
	}
	if list.Total == 0 {
		list.Total = len(list.Users)
	}
	return &list, nil
}

// UpdateUserRole assigns a new role to a user. The change is not visible to
// that user's own session until their next refresh.
func (s *AdminService) UpdateUserRole(ctx context.Context, id string, role models.Role) error {
	req := models.UpdateRoleRequest{Role: role}
	if err := validation.Struct(req); err != nil {
		return err
	}
	return s.api.Put(ctx, "/admin/users/"+url.PathEscape(id)+"/role", req, nil)
}

// Invoices lists invoices across all users. A limit of 0 fetches everything.
func (s *AdminService) Invoices(ctx context.Context, limit int) (*models.AdminInvoiceList, error) {
	endpoint := "/admin/invoices"
	if limit > 0 {
		endpoint = fmt.Sprintf("%s?limit=%d", endpoint, limit)
	}
	var list models.AdminInvoiceList
	if err := s.api.Get(ctx, endpoint, &list); err != nil {
		return nil, err
	}
	if list.Invoices == nil {
		list.Invoices = []models.AdminInvoice{}
	}
	if list.Total == 0 {
		list.Total = len(list.Invoices)
	}
	return &list, nil
}
