/**
 * @description
 * This package provides a Go client for the Shore Payment Service. It wraps the
 * service's HTTP API with typed connectors for merchants, charges, disputes,
 * bank accounts, connected (Stripe) accounts and country reference data.
 *
 * Key features:
 * - Issues basic-authenticated requests against a configured base URL.
 * - Classifies responses into value, absence (404) or typed errors.
 * - Decodes JSON payloads into the value objects defined in this package.
 *
 * @dependencies
 * - net/http, net/url, log/slog: Standard Go libraries.
 */
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// Config carries the immutable settings for a Client. It is passed explicitly
// to NewClient; the package keeps no global state.
type Config struct {
	// BaseURL of the payment service, e.g. "http://localhost:5012/".
	BaseURL string
	// Secret is the basic-auth username. May be empty.
	Secret string
	// Password is the basic-auth password. May be empty.
	Password string
	// Locale, when set, is merged into the query of every request.
	Locale string
}

// Client is the HTTP transport for the payment service. All connectors share
// one Client; it is safe for concurrent use.
type Client struct {
	baseURL    string
	secret     string
	password   string
	locale     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures optional Client behavior.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (30s timeout).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new payment service client.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		secret:   cfg.Secret,
		password: cfg.Password,
		locale:   cfg.Locale,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request performs one authenticated round trip. Parameters travel in the
// query string using the service's bracketed form syntax (see encodeParams).
// Transport-level failures are wrapped and propagated unclassified.
func (c *Client) request(ctx context.Context, method, path string, params Params) (*http.Response, error) {
	query := encodeParams(params)
	if c.locale != "" {
		query.Set("locale", c.locale)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.SetBasicAuth(c.secret, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment service request %s %s failed: %w", method, path, err)
	}

	c.logger.DebugContext(ctx, "payment service request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
	)
	return resp, nil
}

// encodeParams flattens a parameter map into URL query values using the
// bracketed key syntax the service expects: nested maps become
// "outer[inner]=v", slices become "key[]=v". Keys are walked in sorted order
// so encoding is deterministic.
func encodeParams(params Params) url.Values {
	values := url.Values{}
	for _, key := range sortedKeys(params) {
		encodeParam(values, key, params[key])
	}
	return values
}

func encodeParam(values url.Values, key string, value any) {
	switch v := value.(type) {
	case nil:
		values.Add(key, "")
	case Params:
		for _, k := range sortedKeys(v) {
			encodeParam(values, key+"["+k+"]", v[k])
		}
	case map[string]any:
		for _, k := range sortedKeys(v) {
			encodeParam(values, key+"["+k+"]", v[k])
		}
	case map[string]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			values.Add(key+"["+k+"]", v[k])
		}
	case []any:
		for _, item := range v {
			encodeParam(values, key+"[]", item)
		}
	case []string:
		for _, item := range v {
			values.Add(key+"[]", item)
		}
	default:
		values.Add(key, fmt.Sprint(v))
	}
}
