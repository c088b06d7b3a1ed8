package services

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/diewo77/go-invoices-client/httpx"
	"github.com/diewo77/go-invoices-client/models"
	"github.com/diewo77/go-invoices-client/validation"
)

// InvoiceService manages the current user's invoices.
type InvoiceService struct {
	api *httpx.Client
}

// List fetches the user's invoices. The backend has served both a wrapped
// object and a bare array over time; both decode to the same envelope.
func (s *InvoiceService) List(ctx context.Context) (*models.InvoiceList, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, "/invoices", &raw); err != nil {
		return nil, err
	}
	return decodeInvoiceList(raw), nil
}

// Create submits a new invoice with status draft or sent.
func (s *InvoiceService) Create(ctx context.Context, req models.CreateInvoiceRequest) (*models.Invoice, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	var invoice models.Invoice
	if err := s.api.Post(ctx, "/invoices", req, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func decodeInvoiceList(raw json.RawMessage) *models.InvoiceList {
	list := &models.InvoiceList{Invoices: []models.Invoice{}}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return list
	}
	if trimmed[0] == '[' {
		var invoices []models.Invoice
		if json.Unmarshal(trimmed, &invoices) == nil && invoices != nil {
			list.Invoices = invoices
		}
		list.Total = len(list.Invoices)
		return list
	}
	if json.Unmarshal(trimmed, list) != nil || list.Invoices == nil {
		list.Invoices = []models.Invoice{}
	}
	if list.Total == 0 {
		list.Total = len(list.Invoices)
	}
	return list
}
