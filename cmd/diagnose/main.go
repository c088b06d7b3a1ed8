// Command diagnose probes the backend and reports what it finds: base
// reachability, /api routing, auth behavior without a token, and response
// timings. It is a read-only tool for pinning down whether a problem lives
// in the backend, the network, or this client.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/diewo77/go-invoices-client/httpx"
	"github.com/diewo77/go-invoices-client/internal/config"
	"github.com/diewo77/go-invoices-client/internal/logging"
	"github.com/diewo77/go-invoices-client/models"
	"github.com/diewo77/go-invoices-client/services"
	"github.com/diewo77/go-invoices-client/validation"
)

func section(title string) {
	fmt.Println("\n" + strings.Repeat("═", 70))
	fmt.Printf(" %s\n", title)
	fmt.Println(strings.Repeat("═", 70))
}

func subsection(title string) {
	fmt.Printf("\n▶ %s\n", title)
	fmt.Println(strings.Repeat("─", 70))
}

// probe runs one request and prints status, duration and a body excerpt.
func probe(description string, fn func() error) {
	start := time.Now()
	err := fn()
	duration := time.Since(start)

	fmt.Printf("\n  %s\n", description)
	fmt.Printf("  Duration: %s\n", duration.Round(time.Millisecond))
	if err == nil {
		fmt.Println("  Status: OK")
		return
	}
	var apiErr *httpx.APIError
	if errors.As(err, &apiErr) {
		fmt.Printf("  Status: %d\n", apiErr.Status)
		fmt.Printf("  Message: %s\n", apiErr.Message)
		if len(apiErr.Errors) > 0 {
			pretty, _ := json.MarshalIndent(apiErr.Errors, "  ", "  ")
			fmt.Printf("  Field errors: %s\n", pretty)
		}
		return
	}
	var valErr *validation.Error
	if errors.As(err, &valErr) {
		pretty, _ := json.MarshalIndent(valErr.Violations, "  ", "  ")
		fmt.Printf("  Rejected before the wire by pre-flight validation: %s\n", pretty)
		return
	}
	fmt.Printf("  ERROR: %v\n", err)
}

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.LogPretty, os.Stderr)

	hc := &http.Client{Timeout: cfg.HTTPTimeout}
	clientOpts := []httpx.Option{
		httpx.WithHTTPClient(hc),
		httpx.WithLogger(log),
		httpx.WithUserAgent("go-invoices-client/diagnose"),
	}
	if cfg.RateLimit > 0 {
		clientOpts = append(clientOpts, httpx.WithRateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)))
	}
	api := httpx.New(cfg.APIURL, clientOpts...)
	svc := services.New(api)

	section("BACKEND DIAGNOSTIC")
	fmt.Printf("\nBackend URL: %s\n", cfg.APIURL)

	subsection("Base reachability")
	// Root of the host, without the /api prefix. Render and friends answer
	// here even when the app behind them is down.
	root := strings.TrimSuffix(cfg.APIURL, "/api")
	probe("GET "+root, func() error {
		return rawProbe(ctx, hc, root)
	})

	subsection("API routing")
	probe("GET "+cfg.APIURL, func() error {
		return rawProbe(ctx, hc, cfg.APIURL)
	})

	subsection("Auth behavior without a token")
	probe("GET /auth/me (expect 401)", func() error {
		_, err := svc.Auth.Me(ctx)
		return err
	})
	probe("GET /invoices (expect 401)", func() error {
		_, err := svc.Invoices.List(ctx)
		return err
	})

	subsection("Credential validation")
	probe("POST /auth/login with bogus credentials (expect 4xx)", func() error {
		_, err := svc.Auth.Login(ctx, models.LoginRequest{
			Email:    "diagnostic@example.com",
			Password: "not-a-real-password",
		})
		return err
	})

	subsection("Validation errors")
	probe("POST /auth/register with malformed payload (expect field errors)", func() error {
		_, err := svc.Auth.Register(ctx, models.RegisterRequest{
			Email:    "not-an-email",
			Password: "short",
			Name:     "",
		})
		return err
	})

	fmt.Println("\nDone. A healthy backend answers the base URL, routes /api,")
	fmt.Println("and returns 401 for protected endpoints without a token.")
}

// rawProbe hits a URL outside the /api contract, so it goes through a plain
// request rather than the typed client.
func rawProbe(ctx context.Context, hc *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := hc.Do(req)
	if err != nil {
		return &httpx.APIError{Message: "Network error. Please check your connection.", Status: 0}
	}
	defer resp.Body.Close()
	fmt.Printf("  HTTP %d, Content-Type %s\n", resp.StatusCode, resp.Header.Get("Content-Type"))
	if resp.StatusCode >= 400 {
		return &httpx.APIError{Message: resp.Status, Status: resp.StatusCode}
	}
	return nil
}
