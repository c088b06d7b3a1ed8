// Command smoke runs an end-to-end integration check against the live
// backend: registration, login, who-am-i, invoice listing, and the expected
// rejections for bad credentials and missing tokens.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"github.com/diewo77/go-invoices-client/auth"
	"github.com/diewo77/go-invoices-client/gate"
	"github.com/diewo77/go-invoices-client/httpx"
	"github.com/diewo77/go-invoices-client/internal/config"
	"github.com/diewo77/go-invoices-client/internal/logging"
	"github.com/diewo77/go-invoices-client/models"
	"github.com/diewo77/go-invoices-client/services"
	"github.com/diewo77/go-invoices-client/stats"
)

type results struct {
	total  int
	passed int
	failed int
}

func (r *results) record(name string, ok bool, detail string) {
	r.total++
	if ok {
		r.passed++
		fmt.Printf("  PASS  %s\n", name)
	} else {
		r.failed++
		fmt.Printf("  FAIL  %s", name)
		if detail != "" {
			fmt.Printf(": %s", detail)
		}
		fmt.Println()
	}
}

func section(title string) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", 60))
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

	clientOpts := []httpx.Option{
		httpx.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		httpx.WithLogger(log),
		httpx.WithUserAgent("go-invoices-client/smoke"),
	}
	if cfg.TokenFile != "" {
		store, err := httpx.NewFileStore(cfg.TokenFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "token store: %v\n", err)
			os.Exit(1)
		}
		clientOpts = append(clientOpts, httpx.WithTokenStore(store))
	}
	if cfg.RateLimit > 0 {
		clientOpts = append(clientOpts, httpx.WithRateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)))
	}
	api := httpx.New(cfg.APIURL, clientOpts...)
	svc := services.New(api)
	sess := auth.NewSession(api, svc.Auth, auth.WithLogger(log))
	guard := gate.NewGuard()

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("INVOICING BACKEND - API INTEGRATION TEST")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("\nBackend URL: %s\n", cfg.APIURL)

	var res results

	// A unique throwaway account unless credentials were provided.
	email := cfg.SmokeEmail
	password := cfg.SmokePassword
	fresh := email == ""
	if fresh {
		email = fmt.Sprintf("testuser%d@example.com", time.Now().UnixNano())
		password = "Password123!"
	}

	section("TEST 1: User Registration")
	if fresh {
		err = sess.Register(ctx, models.RegisterRequest{
			Email:    email,
			Password: password,
			Name:     "Test User",
		})
		res.record("register new user", err == nil, errDetail(err))
	} else {
		fmt.Println("  SKIP  using provided credentials")
	}

	section("TEST 2: User Login")
	sess.Logout()
	err = sess.Login(ctx, models.LoginRequest{Email: email, Password: password})
	res.record("login", err == nil, errDetail(err))
	if err != nil {
		summary(&res)
		return
	}

	section("TEST 3: Get Current User")
	me, err := svc.Auth.Me(ctx)
	res.record("GET /auth/me", err == nil, errDetail(err))
	if me != nil {
		fmt.Printf("  user: %s (role %s)\n", me.Email, me.Role)
		if guard.RequireAdminArea(sess, false).Allowed() {
			fmt.Println("  admin area: accessible")
		} else {
			fmt.Println("  admin area: not accessible (expected for a fresh user)")
		}
	}

	section("TEST 4: Get Invoices List")
	list, err := svc.Invoices.List(ctx)
	res.record("GET /invoices", err == nil, errDetail(err))
	if list != nil {
		sum := stats.SummarizeInvoices(list.Invoices)
		fmt.Printf("  %d invoices (draft %d, sent %d, paid %d, overdue %d)\n",
			sum.Total, sum.Draft, sum.Sent, sum.Paid, sum.Overdue)
		fmt.Printf("  revenue %s, outstanding %s\n",
			stats.FormatCurrency(sum.TotalRevenue, "USD", language.AmericanEnglish),
			stats.FormatCurrency(sum.Outstanding, "USD", language.AmericanEnglish))
	}

	section("TEST 5: Login with Invalid Credentials (Expected to Fail)")
	_, err = svc.Auth.Login(ctx, models.LoginRequest{
		Email:    "nonexistent@example.com",
		Password: "wrongpassword",
	})
	var apiErr *httpx.APIError
	rejected := errors.As(err, &apiErr) && apiErr.Status >= 400
	res.record("invalid credentials rejected", rejected, errDetail(err))

	section("TEST 6: Protected Endpoint Without Auth (Expected to Fail)")
	bare := httpx.New(cfg.APIURL, httpx.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}))
	_, err = services.New(bare).Invoices.List(ctx)
	rejected = errors.As(err, &apiErr) && apiErr.Status == 401
	res.record("unauthenticated access rejected", rejected, errDetail(err))

	summary(&res)
	if res.failed > 0 {
		os.Exit(1)
	}
}

func errDetail(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *httpx.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s (status %d)", apiErr.Message, apiErr.Status)
	}
	return err.Error()
}

func summary(res *results) {
	section("SUMMARY")
	fmt.Printf("  total %d, passed %d, failed %d\n", res.total, res.passed, res.failed)
}
