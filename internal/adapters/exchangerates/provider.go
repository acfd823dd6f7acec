package exchangerates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SscSPs/ct_order_jobs/internal/apperrors"
	"github.com/SscSPs/ct_order_jobs/internal/core/domain"
	"github.com/SscSPs/ct_order_jobs/internal/core/ports/repositories"
	"github.com/go-playground/validator/v10"
)

const (
	serviceName     = "exchange rates"
	maxResponseSize = 1 << 20
)

// ratesResponse is the payload of the pricing service, e.g.
// {"result":"success","base_code":"USD","rates":{"USD":1,"EUR":0.92}}.
type ratesResponse struct {
	Rates map[string]float64 `json:"rates" validate:"required,min=1"`
}

// Provider fetches USD-based exchange rates from an HTTP pricing service.
type Provider struct {
	client   *http.Client
	url      string
	validate *validator.Validate
}

// NewProvider creates a Provider for the given endpoint.
func NewProvider(url string, timeout time.Duration) *Provider {
	return &Provider{
		client: &http.Client{
			Timeout: timeout,
		},
		url:      url,
		validate: validator.New(),
	}
}

var _ repositories.ExchangeRateReader = (*Provider)(nil)

// FetchRates performs a fresh GET on every call; rates are never cached.
func (p *Provider) FetchRates(ctx context.Context) (domain.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError(serviceName, fmt.Errorf("status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, apperrors.NewUpstreamError(serviceName, fmt.Errorf("failed to read response body: %w", err))
	}

	var payload ratesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperrors.NewUpstreamError(serviceName, fmt.Errorf("failed to parse response: %w", err))
	}
	if err := p.validate.Struct(payload); err != nil {
		return nil, apperrors.NewUpstreamError(serviceName, fmt.Errorf("invalid response: %w", err))
	}

	return domain.RateTable(payload.Rates), nil
}
