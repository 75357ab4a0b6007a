package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public CoinGecko v3 API root.
const DefaultBaseURL = "https://api.coingecko.com/api/v3/"

const defaultTimeout = 30 * time.Second

// Client is a CoinGecko API client. The zero configuration talks to the
// public API; use options to inject an API key, a custom HTTP client or a
// logger. A Client is safe for concurrent use as long as its http.Client is.
type Client struct {
	baseURL      string
	key          string
	failSilently bool
	httpClient   *http.Client
	logger       zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithKey sets the CoinGecko API key. The key is stored for future
// authenticated endpoints; the public v3 API does not require one and the
// client does not currently send it.
func WithKey(key string) Option {
	return func(c *Client) {
		c.key = key
	}
}

// WithFailSilently makes failed requests return a nil result instead of an
// error. Failures are still logged at info level. Callers in this mode
// cannot distinguish a failed call from an empty result.
func WithFailSilently() Option {
	return func(c *Client) {
		c.failSilently = true
	}
}

// WithBaseURL overrides the API root, e.g. for the pro API or a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger used for request failures. Defaults to a no-op
// logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a CoinGecko client.
func New(opts ...Option) *Client {
	client := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// get performs a GET request against the given relative path and decodes a
// 200 response into out. Every call is exactly one attempt; there are no
// retries. Non-200 responses yield an *APIError, unless the client is in
// fail-silently mode, in which case get logs the failure and returns nil
// with out left untouched.
func (c *Client) get(ctx context.Context, path string, params Params, out any) error {
	requestURL := c.baseURL + path
	if query := queryValues(cleanParams(params)); query != nil {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return c.fail(resp.StatusCode, path, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// fail classifies a non-200 response. The log event carries the parsed body
// when it is valid JSON, the raw text otherwise.
func (c *Client) fail(statusCode int, path string, body []byte) error {
	var details any
	if err := json.Unmarshal(body, &details); err != nil {
		details = string(body)
	}

	if c.failSilently {
		c.logger.Info().
			Int("status", statusCode).
			Str("path", path).
			Interface("details", details).
			Msg("CoinGecko API silent error")
		return nil
	}

	c.logger.Warn().
		Int("status", statusCode).
		Str("path", path).
		Interface("details", details).
		Msg("CoinGecko API error")
	return newAPIError(statusCode, body)
}
