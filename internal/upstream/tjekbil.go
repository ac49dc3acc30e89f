package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"platelookup/internal/config"
)

const (
	// DefaultBaseURL is the tjekbil.dk plate endpoint; the plate is appended directly.
	DefaultBaseURL = "https://www.tjekbil.dk/api/v3/dmr/regnrnew/"
	lookupQuery    = "?sl=true"

	// drained from non-2xx responses so the connection can be reused
	maxDiscardBytes = 4 << 10
)

// Header values sent on every lookup. The upstream filters non-browser clients.
const (
	HeaderAccept         = "application/json, text/plain, */*"
	HeaderAcceptLanguage = "en-US,en;q=0.9"
	HeaderReferer        = "https://www.tjekbil.dk/nummerplade/"
	HeaderUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Option customizes the tjekbil client.
type Option func(*tjekbilClient)

// WithBaseURL points the client at another host, e.g. an httptest stub.
// The URL must end where the plate segment starts.
func WithBaseURL(baseURL string) Option {
	return func(c *tjekbilClient) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *tjekbilClient) { c.http = hc }
}

// WithMetrics records call outcomes and latency.
func WithMetrics(m *Metrics) Option {
	return func(c *tjekbilClient) { c.metrics = m }
}

// tjekbilClient implements VehicleSource against tjekbil.dk.
// It is safe for concurrent use by multiple goroutines.
type tjekbilClient struct {
	http    *http.Client
	baseURL string
	metrics *Metrics
}

// NewTjekbil creates the outbound client. A zero cfg.Timeout keeps the http.Client default.
func NewTjekbil(cfg config.UpstreamConfig, opts ...Option) VehicleSource {
	c := &tjekbilClient{
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.Timeout,
		},
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *tjekbilClient) Fetch(ctx context.Context, plate string) (json.RawMessage, error) {
	start := time.Now()
	body, err := c.fetch(ctx, plate)
	c.metrics.observe(outcomeOf(err), time.Since(start))
	return body, err
}

func (c *tjekbilClient) fetch(ctx context.Context, plate string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+plate+lookupQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", HeaderAccept)
	req.Header.Set("Accept-Language", HeaderAcceptLanguage)
	req.Header.Set("Referer", HeaderReferer)
	req.Header.Set("User-Agent", HeaderUserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDiscardBytes))
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !json.Valid(body) {
		return nil, ErrInvalidPayload
	}
	return json.RawMessage(body), nil
}

// outcomeOf maps a Fetch error to a metrics label.
func outcomeOf(err error) string {
	if err == nil {
		return OutcomeOK
	}
	var netErr net.Error
	switch {
	case errors.Is(err, ErrUnexpectedStatus):
		return OutcomeStatus
	case errors.Is(err, ErrInvalidPayload):
		return OutcomePayload
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return OutcomeTimeout
	default:
		return OutcomeTransport
	}
}
