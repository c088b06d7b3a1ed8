package services

import (
	"context"
	"net/url"

	"github.com/diewo77/go-invoices-client/httpx"
	"github.com/diewo77/go-invoices-client/models"
	"github.com/diewo77/go-invoices-client/validation"
)

// ClientService manages the client (customer) resource.
type ClientService struct {
	api *httpx.Client
}

// List fetches all clients. The backend returns a bare array; it is wrapped
// into a ClientList so callers always see the same envelope. Backend order
// is preserved as-is.
func (s *ClientService) List(ctx context.Context) (*models.ClientList, error) {
	var clients []models.Client
	if err := s.api.Get(ctx, "/clients", &clients); err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []models.Client{}
	}
	return &models.ClientList{Clients: clients, Total: len(clients)}, nil
}

// Get fetches a single client by id.
func (s *ClientService) Get(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	if err := s.api.Get(ctx, "/clients/"+url.PathEscape(id), &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// Create adds a new client.
func (s *ClientService) Create(ctx context.Context, req models.CreateClientRequest) (*models.Client, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	var client models.Client
	if err := s.api.Post(ctx, "/clients", req, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// Update replaces a client's editable fields.
func (s *ClientService) Update(ctx context.Context, id string, req models.UpdateClientRequest) (*models.Client, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	var client models.Client
	if err := s.api.Put(ctx, "/clients/"+url.PathEscape(id), req, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// Archive soft-deletes a client. Archiving is terminal: no unarchive
// operation exists.
func (s *ClientService) Archive(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/clients/"+url.PathEscape(id), nil)
}
