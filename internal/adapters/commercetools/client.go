package commercetools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/ct_order_jobs/internal/apperrors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	serviceName     = "commercetools"
	maxResponseSize = 10 << 20
)

// Config holds the API client credentials of a commercetools project.
type Config struct {
	ProjectKey   string
	ClientID     string
	ClientSecret string
	Scopes       []string
	APIURL       string
	AuthURL      string
	Timeout      time.Duration
}

// Client talks to the commercetools HTTP API of one project.
type Client struct {
	httpClient *http.Client
	apiURL     string
	projectKey string
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the OAuth2 transport, mainly for tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client that authenticates with the client credentials
// flow against {AuthURL}/oauth/token. Tokens are cached and refreshed by the
// oauth2 transport.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.ProjectKey == "" || cfg.APIURL == "" {
		return nil, fmt.Errorf("%w: commercetools project key and API URL are required", apperrors.ErrValidation)
	}

	c := &Client{
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		projectKey: cfg.ProjectKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient != nil {
		return c, nil
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.AuthURL == "" {
		return nil, fmt.Errorf("%w: commercetools client credentials and auth URL are required", apperrors.ErrValidation)
	}

	ccConfig := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     strings.TrimRight(cfg.AuthURL, "/") + "/oauth/token",
		Scopes:       cfg.Scopes,
	}
	// The token endpoint gets the same timeout as API calls.
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: cfg.Timeout})
	c.httpClient = ccConfig.Client(tokenCtx)
	c.httpClient.Timeout = cfg.Timeout

	return c, nil
}

// APIError is a non-success answer of the commercetools API.
type APIError struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Errors     []APIErrorEntry `json:"errors,omitempty"`
}

// APIErrorEntry is one entry of an error response.
type APIErrorEntry struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", serviceName, e.StatusCode, e.Message)
}

// Unwrap lets callers use errors.Is with the apperrors sentinels.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrUpstreamUnavailable
}

// UserMessage returns the platform's own description of the failure.
func (e *APIError) UserMessage() string {
	return e.Message
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
	}
	apiErr.StatusCode = statusCode
	return apiErr
}

// do sends a request to {apiURL}/{projectKey}{path} and decodes a JSON answer into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.apiURL + "/" + c.projectKey + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", serviceName, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", serviceName, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError(serviceName, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return apperrors.NewUpstreamError(serviceName, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return apperrors.NewUpstreamError(serviceName, fmt.Errorf("failed to parse response: %w", err))
	}
	return nil
}

func pagedQuery(sort []string, limit int) url.Values {
	query := url.Values{}
	for _, s := range sort {
		query.Add("sort", s)
	}
	if limit > 0 {
		query.Set("limit", fmt.Sprint(limit))
	}
	return query
}
