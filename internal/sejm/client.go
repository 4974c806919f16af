// Package sejm is a client for the public Sejm API's print endpoints.
//
// The API offers no server-side filtering or pagination for prints: the
// list endpoint returns every print of a term in one response. The client
// makes a single attempt per call; retries are left to the caller.
package sejm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
	"github.com/tbourn/sejm-prints-backend/internal/observability"
)

const (
	DefaultBaseURL   = "https://api.sejm.gov.pl/sejm"
	DefaultSiteURL   = "https://www.sejm.gov.pl"
	DefaultUserAgent = "sejm-prints-backend/1.0"
)

// StatusError is returned when the API answers with a non-200 status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sejm api: unexpected status %d for %s", e.StatusCode, e.URL)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// Config holds client configuration.
type Config struct {
	BaseURL   string
	SiteURL   string
	Term      int
	Timeout   time.Duration
	UserAgent string
}

// Client fetches prints of one parliamentary term.
type Client struct {
	httpClient *http.Client
	baseURL    string
	siteURL    string
	term       int
	userAgent  string
}

// New creates a Client. A nil httpClient gets a client with cfg.Timeout.
func New(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	c := &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		siteURL:    strings.TrimRight(cfg.SiteURL, "/"),
		term:       cfg.Term,
		userAgent:  cfg.UserAgent,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.siteURL == "" {
		c.siteURL = DefaultSiteURL
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	return c
}

// Term returns the parliamentary term the client is bound to.
func (c *Client) Term() int { return c.term }

// ListPrints returns every print of the term.
func (c *Client) ListPrints(ctx context.Context) ([]domain.Print, error) {
	endpoint := fmt.Sprintf("%s/term%d/prints", c.baseURL, c.term)

	var raw []APIPrint
	if err := c.getJSON(ctx, "list_prints", endpoint, &raw); err != nil {
		return nil, err
	}

	prints := make([]domain.Print, 0, len(raw))
	for _, p := range raw {
		prints = append(prints, toDomain(p))
	}
	log.Debug().Int("term", c.term).Int("prints", len(prints)).Msg("fetched prints")
	return prints, nil
}

// GetPrint returns a single print. A missing print yields a *StatusError
// with StatusCode 404.
func (c *Client) GetPrint(ctx context.Context, number string) (*domain.Print, error) {
	endpoint := fmt.Sprintf("%s/term%d/prints/%s", c.baseURL, c.term, url.PathEscape(number))

	var raw APIPrint
	if err := c.getJSON(ctx, "get_print", endpoint, &raw); err != nil {
		return nil, err
	}
	p := toDomain(raw)
	return &p, nil
}

// PDFURL is the address of the print's main PDF document.
func (c *Client) PDFURL(number string) string {
	n := url.PathEscape(number)
	return fmt.Sprintf("%s/term%d/prints/%s/%s.pdf", c.baseURL, c.term, n, n)
}

// ProcessURL is the Sejm page tracking the legislative process opened by
// processNumber, or "" when there is none.
func (c *Client) ProcessURL(processNumber string) string {
	if strings.TrimSpace(processNumber) == "" {
		return ""
	}
	return fmt.Sprintf("%s/Sejm%d.nsf/PrzebiegProc.xsp?nr=%s", c.siteURL, c.term, url.QueryEscape(processNumber))
}

func (c *Client) getJSON(ctx context.Context, op, endpoint string, dst any) (err error) {
	ctx, span := otel.Tracer("sejm").Start(ctx, op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.url", endpoint),
			attribute.Int("sejm.term", c.term),
		),
	)
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		observability.ObserveUpstream(op, outcome, time.Since(start))
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, URL: endpoint}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
