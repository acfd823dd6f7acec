package commercetools_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/ct_order_jobs/internal/adapters/commercetools"
	"github.com/SscSPs/ct_order_jobs/internal/apperrors"
	"github.com/SscSPs/ct_order_jobs/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProject = "test-project"

// newPlatformServer serves a token endpoint plus the given API handler and
// rejects API calls that do not carry the issued bearer token.
func newPlatformServer(t *testing.T, api http.HandlerFunc) (*httptest.Server, *int32) {
	t.Helper()
	var tokenRequests int32

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&tokenRequests, 1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"test-token","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/"+testProject+"/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"statusCode":401,"message":"invalid_token"}`)
			return
		}
		api(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &tokenRequests
}

func newTestClient(t *testing.T, server *httptest.Server) *commercetools.Client {
	t.Helper()
	client, err := commercetools.NewClient(commercetools.Config{
		ProjectKey:   testProject,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Scopes:       []string{"view_orders:" + testProject},
		APIURL:       server.URL,
		AuthURL:      server.URL,
		Timeout:      5 * time.Second,
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_Validation(t *testing.T) {
	_, err := commercetools.NewClient(commercetools.Config{APIURL: "http://localhost"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = commercetools.NewClient(commercetools.Config{ProjectKey: "p", APIURL: "http://localhost"})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "credentials are required without an injected HTTP client")

	client, err := commercetools.NewClient(
		commercetools.Config{ProjectKey: "p", APIURL: "http://localhost"},
		commercetools.WithHTTPClient(http.DefaultClient),
	)
	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestQueryOrders_Success(t *testing.T) {
	server, tokenRequests := newPlatformServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/"+testProject+"/orders", r.URL.Path)
		assert.Equal(t, []string{"lastModifiedAt asc"}, r.URL.Query()["sort"])
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, `orderState="Complete"`, r.URL.Query().Get("where"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"limit": 20, "offset": 0, "count": 2, "total": 5,
			"results": []map[string]any{
				{"id": "A", "customerId": "c1", "totalPrice": map[string]any{"type": "centPrecision", "currencyCode": "EUR", "centAmount": 1000, "fractionDigits": 2}},
				{"id": "B", "totalPrice": map[string]any{"type": "centPrecision", "currencyCode": "JPY", "centAmount": 1500, "fractionDigits": 0}},
			},
		})
	})
	repo := commercetools.NewOrderRepository(newTestClient(t, server))

	page, err := repo.QueryOrders(context.Background(), domain.OrderQuery{
		Sort:  []string{"lastModifiedAt asc"},
		Limit: 20,
		Where: `orderState="Complete"`,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "c1", page.Results[0].CustomerID)
	assert.Equal(t, int64(1000), page.Results[0].TotalPrice.CentAmount)
	assert.Equal(t, "EUR", page.Results[0].TotalPrice.CurrencyCode)
	assert.Empty(t, page.Results[1].CustomerID)
	assert.Equal(t, 0, page.Results[1].TotalPrice.FractionDigits)
	assert.Equal(t, int32(1), atomic.LoadInt32(tokenRequests))
}

func TestQueryOrders_PlatformError(t *testing.T) {
	server, _ := newPlatformServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, `{"statusCode":502,"message":"Bad gateway"}`)
	})
	repo := commercetools.NewOrderRepository(newTestClient(t, server))

	page, err := repo.QueryOrders(context.Background(), domain.OrderQuery{Sort: []string{"lastModifiedAt asc"}})

	require.Error(t, err)
	assert.Nil(t, page)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	assert.Equal(t, "Bad gateway", apperrors.UpstreamMessage(err))
}

func TestQueryOrders_Unreachable(t *testing.T) {
	server, _ := newPlatformServer(t, func(w http.ResponseWriter, r *http.Request) {})
	client := newTestClient(t, server)
	server.Close()

	_, err := commercetools.NewOrderRepository(client).QueryOrders(context.Background(), domain.OrderQuery{})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestQueryOrders_MalformedBody(t *testing.T) {
	server, _ := newPlatformServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"results": [`)
	})

	_, err := commercetools.NewOrderRepository(newTestClient(t, server)).QueryOrders(context.Background(), domain.OrderQuery{})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestUpstreamMessage_FallsBackToErrorText(t *testing.T) {
	err := apperrors.NewUpstreamError("commercetools", io.ErrUnexpectedEOF)
	assert.Equal(t, err.Error(), apperrors.UpstreamMessage(err))
}
