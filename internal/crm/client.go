package crm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
)

// ErrUpstream marks transport and semantic failures of the deal-fetch
// collaborator (non-2xx status, malformed payload, ok:false). The collaborator
// surfaces no finer-grained code, so neither do we.
var ErrUpstream = errors.New("deal fetch failed")

// DefaultTimeout is the upper bound on one fetch, shared with the loader.
const DefaultTimeout = 90 * time.Second

// Client fetches grouped deals over HTTP.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the client's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a client for the deal-fetch endpoint.
func NewClient(baseURL, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("crm base URL is required")
	}
	c := &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchGroupedDeals issues the parameterless grouped-deals request, reporting
// the four progress steps through the callback as the fetch advances.
func (c *Client) FetchGroupedDeals(ctx context.Context, progress ProgressFunc) (*model.GroupedDeals, error) {
	report := func(step, percent int) {
		if progress != nil {
			progress(step, percent, StepLabels[step])
		}
	}

	report(StepConnecting, 5)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/deals/grouped", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build deals request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	report(StepFetching, 25)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("deals request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("upstream returned non-2xx for grouped deals", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: upstream status %d", ErrUpstream, resp.StatusCode)
	}

	report(StepFetching, 60)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read deals response: %w", err)
	}

	report(StepClassifying, 80)

	var payload model.GroupedDeals
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %v", ErrUpstream, err)
	}
	if !payload.OK {
		return nil, fmt.Errorf("%w: upstream reported failure", ErrUpstream)
	}

	report(StepFinalizing, 100)

	c.logger.Debug("fetched grouped deals",
		"total", payload.Total,
		"raw_stages", len(payload.Grouped))
	return &payload, nil
}
