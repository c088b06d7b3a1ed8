// Package services groups the per-resource API modules. Each service is a
// thin typed wrapper over the shared httpx.Client; it shapes responses and
// runs pre-flight validation but holds no state of its own.
package services

import "github.com/diewo77/go-invoices-client/httpx"

// Services bundles every resource service over one shared client.
type Services struct {
	Auth     *AuthService
	Clients  *ClientService
	Invoices *InvoiceService
	Admin    *AdminService
}

// New wires all services to the given client.
func New(api *httpx.Client) *Services {
	return &Services{
		Auth:     &AuthService{api: api},
		Clients:  &ClientService{api: api},
		Invoices: &InvoiceService{api: api},
		Admin:    &AdminService{api: api},
	}
}
