// Package gateway is a small Paystack REST client covering the calls the
// payment flow needs: initialize, verify and list, plus webhook signatures.
package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"museum/internal/payment/models"
	"museum/pkg/platform/sentinel"
)

const (
	DefaultBaseURL = "https://api.paystack.co"
	currencyNGN    = "NGN"
	maxBodyBytes   = 1 << 20
)

// APIError is a response the gateway answered with status false or a non-2xx
// code. It is distinct from transport failures, which wrap
// sentinel.ErrUnavailable.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paystack: %d %s", e.StatusCode, e.Message)
}

// Client calls the Paystack API with the secret key.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	tracer     trace.Tracer
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func New(secretKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		tracer:     otel.Tracer("museum/payment/gateway"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// InitializeRequest starts a checkout. Amount is in kobo.
type InitializeRequest struct {
	Email       string          `json:"email"`
	Amount      int64           `json:"amount"`
	Currency    string          `json:"currency"`
	Reference   string          `json:"reference,omitempty"`
	CallbackURL string          `json:"callback_url,omitempty"`
	Metadata    models.Metadata `json:"metadata"`
}

type envelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Meta is the paging block of list responses.
type Meta struct {
	Total     int `json:"total"`
	PerPage   int `json:"perPage"`
	Page      int `json:"page"`
	PageCount int `json:"pageCount"`
}

func (c *Client) Initialize(ctx context.Context, req InitializeRequest) (*models.InitResult, error) {
	if req.Currency == "" {
		req.Currency = currencyNGN
	}
	ctx, span := c.tracer.Start(ctx, "paystack.initialize",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("payment.reference", req.Reference),
			attribute.String("payment.kind", string(req.Metadata.TransactionType)),
			attribute.Int64("payment.amount_kobo", req.Amount),
		))
	defer span.End()

	var resp envelope[models.InitResult]
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", req, &resp); err != nil {
		recordError(span, err)
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) Verify(ctx context.Context, reference string) (*models.GatewayTransaction, error) {
	ctx, span := c.tracer.Start(ctx, "paystack.verify",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("payment.reference", reference)))
	defer span.End()

	var resp envelope[models.GatewayTransaction]
	if err := c.do(ctx, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil, &resp); err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("payment.gateway_status", resp.Data.Status))
	return &resp.Data, nil
}

// ListTransactions returns one page of transactions created at or after from.
func (c *Client) ListTransactions(ctx context.Context, from time.Time, page, perPage int) ([]models.GatewayTransaction, *Meta, error) {
	ctx, span := c.tracer.Start(ctx, "paystack.list",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.Int("paystack.page", page)))
	defer span.End()

	q := url.Values{}
	q.Set("perPage", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))
	if !from.IsZero() {
		q.Set("from", from.UTC().Format(time.RFC3339))
	}
	var resp envelope[[]models.GatewayTransaction]
	if err := c.do(ctx, http.MethodGet, "/transaction?"+q.Encode(), nil, &resp); err != nil {
		recordError(span, err)
		return nil, nil, err
	}
	return resp.Data, resp.Meta, nil
}

// statusChecker is implemented by every envelope instantiation.
type statusChecker interface {
	ok() (bool, string)
}

func (e *envelope[T]) ok() (bool, string) { return e.Status, e.Message }

func (c *Client) do(ctx context.Context, method, path string, body any, out statusChecker) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode paystack request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build paystack request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paystack %s %s: %w: %w", method, path, sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read paystack response: %w: %w", sentinel.ErrUnavailable, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode paystack response: %w", err)
	}
	if status, msg := out.ok(); resp.StatusCode >= http.StatusBadRequest || !status {
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// IsNotFound reports whether the gateway does not know a reference.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Sign returns the hex HMAC-SHA512 of body, the value Paystack sends in
// x-paystack-signature.
func Sign(secretKey string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a webhook signature in constant time.
func VerifySignature(secretKey string, body []byte, signature string) bool {
	if secretKey == "" || signature == "" {
		return false
	}
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
