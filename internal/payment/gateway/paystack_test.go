package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum/internal/payment/models"
	"museum/pkg/platform/sentinel"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("sk_test_123", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestInitialize(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body["email"])
		assert.EqualValues(t, 250050, body["amount"])
		assert.Equal(t, "NGN", body["currency"])
		assert.Equal(t, "DON-1", body["reference"])
		meta := body["metadata"].(map[string]any)
		assert.Equal(t, "donation", meta["transaction_type"])

		_, _ = w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"DON-1"}}`))
	})

	res, err := client.Initialize(context.Background(), InitializeRequest{
		Email:     "ada@example.com",
		Amount:    250050,
		Reference: "DON-1",
		Metadata:  models.Metadata{TransactionType: models.KindDonation},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc", res.AuthorizationURL)
	assert.Equal(t, "abc", res.AccessCode)
	assert.Equal(t, "DON-1", res.Reference)
}

func TestInitializeRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":false,"message":"Invalid email"}`))
	})

	_, err := client.Initialize(context.Background(), InitializeRequest{Email: "x", Amount: 100})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid email", apiErr.Message)
}

func TestVerify(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/PAY-9", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"id":1,"status":"success","reference":"PAY-9","amount":10000,"currency":"NGN","customer":{"email":"ada@example.com"},"metadata":{"transaction_type":"payment","firstname":"Ada"}}}`))
	})

	tx, err := client.Verify(context.Background(), "PAY-9")
	require.NoError(t, err)
	assert.Equal(t, "success", tx.Status)
	assert.Equal(t, int64(10000), tx.Amount)
	assert.True(t, tx.Metadata.Present)
	assert.Equal(t, models.KindPayment, tx.Metadata.TransactionType)
	assert.Equal(t, "Ada", tx.Metadata.Firstname)
}

func TestVerifyEmptyMetadata(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":true,"data":{"status":"abandoned","reference":"X","metadata":""}}`))
	})

	tx, err := client.Verify(context.Background(), "X")
	require.NoError(t, err)
	assert.False(t, tx.Metadata.Present)
}

func TestVerifyUnknownReference(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
	})

	_, err := client.Verify(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
}

func TestListTransactions(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("perPage"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "2025-03-01T00:00:00Z", r.URL.Query().Get("from"))
		_, _ = w.Write([]byte(`{"status":true,"data":[{"reference":"A","status":"success"},{"reference":"B","status":"failed"}],"meta":{"total":52,"perPage":50,"page":2,"pageCount":2}}`))
	})

	txs, meta, err := client.ListTransactions(context.Background(), from, 2, 50)
	require.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, 2, meta.PageCount)
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	client := New("sk", WithBaseURL("http://127.0.0.1:1"), WithHTTPClient(&http.Client{Timeout: time.Second}))
	_, err := client.Verify(context.Background(), "A")
	assert.True(t, errors.Is(err, sentinel.ErrUnavailable))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"event":"charge.success","data":{"reference":"DON-1"}}`)
	sig := Sign("sk_test_123", body)

	assert.True(t, VerifySignature("sk_test_123", body, sig))
	assert.False(t, VerifySignature("sk_test_123", append(body, ' '), sig), "body must be verified byte for byte")
	assert.False(t, VerifySignature("other", body, sig))
	assert.False(t, VerifySignature("sk_test_123", body, "zz"))
	assert.False(t, VerifySignature("sk_test_123", body, ""))
}
