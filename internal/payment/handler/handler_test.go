package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"museum/internal/payment/handler/mocks"
	"museum/internal/payment/models"
	dErrors "museum/pkg/domain-errors"
	"museum/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	h := New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.Register(r)
	s.router = r
}

func (s *HandlerSuite) TestCreateDonation() {
	s.Run("returns checkout details", func() {
		s.service.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req *models.CreateDonationRequest) (*models.DonationCheckout, error) {
				s.Equal(models.Amount(5000), req.Amount)
				return &models.DonationCheckout{
					Donation: &models.Donation{ID: 3, PaystackReference: "DON-1", Status: models.StatusPending},
					Checkout: &models.InitResult{AuthorizationURL: "https://checkout/x", AccessCode: "ac", Reference: "DON-1"},
				}, nil
			})

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/donations/makeDonation", map[string]any{
			"full_name": "Ngozi Eze", "email": "ngozi@example.com", "phone_number": "0803",
			"country": "Nigeria", "amount": "5000",
		})
		rr := testutil.DoRequest(s.router, req)

		body := testutil.AssertSuccess(s.T(), rr, http.StatusCreated)
		s.Equal("Donation created successfully", body["message"])
		data := body["data"].(map[string]any)
		s.Equal("https://checkout/x", data["payment_url"])
		s.Equal("https://checkout/x", data["authorization_url"])
		s.Equal("DON-1", data["reference"])
		s.Equal("pending", data["donation"].(map[string]any)["status"])
	})

	s.Run("validation happens before the gateway", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/donations/makeDonation", map[string]any{
			"full_name": "Ngozi Eze", "email": "ngozi@example.com", "phone_number": "0803",
			"country": "Nigeria", "amount": 0.004,
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertFailure(s.T(), rr, http.StatusBadRequest, "Minimum donation amount is ₦1.00")
	})

	s.Run("gateway failure", func() {
		s.service.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeBadGateway, "Failed to initialize payment"))
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/donations/makeDonation", map[string]any{
			"full_name": "Ngozi Eze", "email": "ngozi@example.com", "phone_number": "0803",
			"country": "Nigeria", "amount": 100,
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertFailure(s.T(), rr, http.StatusBadGateway, "Failed to initialize payment")
	})
}

func (s *HandlerSuite) TestInitializePayment() {
	s.Run("missing fields", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/payment/initialize", map[string]any{"firstname": "Obi"})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertFailure(s.T(), rr, http.StatusBadRequest, "all fields are required")
	})

	s.Run("returns checkout details", func() {
		s.service.EXPECT().InitializePayment(gomock.Any(), gomock.Any()).Return(&models.PaymentCheckout{
			Transaction: &models.Transaction{PaystackReference: "PAY-1"},
			Checkout:    &models.InitResult{AuthorizationURL: "https://checkout/p", AccessCode: "pc", Reference: "PAY-1"},
		}, nil)
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/payment/initialize", map[string]any{
			"firstname": "Obi", "lastname": "Nnamdi", "phone": "0803", "email": "obi@example.com",
			"address": "12 Zik Avenue", "deliverynote": "gate", "state": "Anambra", "amount": 15000,
		})
		rr := testutil.DoRequest(s.router, req)
		body := testutil.AssertSuccess(s.T(), rr, http.StatusCreated)
		data := body["data"].(map[string]any)
		s.Equal("pc", data["access_code"])
		s.Equal("PAY-1", data["transaction"].(map[string]any)["paystack_reference"])
	})
}

func (s *HandlerSuite) TestVerifyDonation() {
	s.service.EXPECT().VerifyDonation(gomock.Any(), "DON-1").Return(
		&models.Donation{PaystackReference: "DON-1", Status: models.StatusCompleted},
		&models.GatewayTransaction{Reference: "DON-1", Status: "success"},
		nil,
	)
	rr := testutil.DoRequest(s.router, httptest.NewRequest(http.MethodGet, "/api/donations/verify/DON-1", nil))

	body := testutil.AssertSuccess(s.T(), rr, http.StatusOK)
	s.Equal("Donation verified successfully", body["message"])
	data := body["data"].(map[string]any)
	s.Equal("success", data["paystack_data"].(map[string]any)["status"])
}

func (s *HandlerSuite) TestVerifyPayment() {
	s.Run("completed", func() {
		s.service.EXPECT().VerifyPayment(gomock.Any(), "PAY-1").
			Return(&models.Transaction{Status: models.StatusCompleted}, nil)
		rr := testutil.DoRequest(s.router, httptest.NewRequest(http.MethodGet, "/api/payment/verify/PAY-1", nil))
		body := testutil.AssertSuccess(s.T(), rr, http.StatusOK)
		s.Equal("Payment verified successfully", body["message"])
	})

	s.Run("not completed", func() {
		s.service.EXPECT().VerifyPayment(gomock.Any(), "PAY-2").
			Return(&models.Transaction{Status: models.StatusCancelled}, nil)
		rr := testutil.DoRequest(s.router, httptest.NewRequest(http.MethodGet, "/api/payment/verify/PAY-2", nil))
		testutil.AssertFailure(s.T(), rr, http.StatusBadRequest, "Payment verification failed")
	})

	s.Run("unknown reference", func() {
		s.service.EXPECT().VerifyPayment(gomock.Any(), "PAY-3").
			Return(nil, dErrors.New(dErrors.CodeNotFound, "Transaction not found"))
		rr := testutil.DoRequest(s.router, httptest.NewRequest(http.MethodGet, "/api/payment/verify/PAY-3", nil))
		testutil.AssertFailure(s.T(), rr, http.StatusNotFound, "Transaction not found")
	})
}

func (s *HandlerSuite) TestGetDonation() {
	s.service.EXPECT().GetDonationByReference(gomock.Any(), "DON-404").
		Return(nil, dErrors.New(dErrors.CodeNotFound, "Donation not found"))
	rr := testutil.DoRequest(s.router, httptest.NewRequest(http.MethodGet, "/api/donations/reference/DON-404", nil))
	testutil.AssertFailure(s.T(), rr, http.StatusNotFound, "Donation not found")
}

func (s *HandlerSuite) TestListDonations() {
	s.Run("parses filters and pagination", func() {
		s.service.EXPECT().ListDonations(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f models.DonationFilter) ([]*models.Donation, models.Pagination, error) {
				s.Equal(2, f.Page)
				s.Equal(5, f.Limit)
				s.Require().NotNil(f.Status)
				s.Equal(models.StatusCompleted, *f.Status)
				s.Require().NotNil(f.IsAnonymous)
				s.True(*f.IsAnonymous)
				return nil, models.NewPagination(2, 5, 6), nil
			})
		rr := testutil.DoRequest(s.router, httptest.NewRequest(http.MethodGet,
			"/api/donations?page=2&limit=5&status=completed&is_anonymous=true", nil))

		body := testutil.AssertSuccess(s.T(), rr, http.StatusOK)
		s.Equal([]any{}, body["data"])
		pagination := body["pagination"].(map[string]any)
		s.Equal(float64(2), pagination["pages"])
		s.Equal(float64(6), pagination["total"])
	})

	s.Run("rejects unknown status", func() {
		rr := testutil.DoRequest(s.router, httptest.NewRequest(http.MethodGet, "/api/donations?status=refunded", nil))
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})

	s.Run("rejects a page whose offset would overflow", func() {
		rr := testutil.DoRequest(s.router, httptest.NewRequest(http.MethodGet,
			"/api/donations?page=9223372036854775807&limit=10", nil))
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})
}

func (s *HandlerSuite) TestDonationStats() {
	s.service.EXPECT().DonationStats(gomock.Any()).Return(&models.DonationStats{TotalDonations: 7, TotalAmount: 1200}, nil)
	rr := testutil.DoRequest(s.router, httptest.NewRequest(http.MethodGet, "/api/donations/stats", nil))
	body := testutil.AssertSuccess(s.T(), rr, http.StatusOK)
	s.Equal(float64(7), body["data"].(map[string]any)["total_donations"])
}

func (s *HandlerSuite) TestWebhook() {
	payload := []byte(`{"event":"charge.success","data":{"reference":"DON-1","status":"success"}}`)

	for _, path := range []string{"/api/donations/webhook", "/api/payment/webhook"} {
		s.Run("passes the raw body on "+path, func() {
			s.service.EXPECT().HandleWebhook(gomock.Any(), payload, "sig").Return(nil)
			req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
			req.Header.Set(SignatureHeader, "sig")
			rr := testutil.DoRequest(s.router, req)
			testutil.AssertSuccess(s.T(), rr, http.StatusOK)
		})
	}

	s.Run("invalid signature", func() {
		s.service.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), "").
			Return(dErrors.New(dErrors.CodeBadRequest, "Invalid signature"))
		rr := testutil.DoRequest(s.router, httptest.NewRequest(http.MethodPost, "/api/donations/webhook", bytes.NewReader(payload)))
		testutil.AssertFailure(s.T(), rr, http.StatusBadRequest, "Invalid signature")
	})

	s.Run("internal failure", func() {
		s.service.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		rr := testutil.DoRequest(s.router, httptest.NewRequest(http.MethodPost, "/api/payment/webhook", bytes.NewReader(payload)))
		testutil.AssertFailure(s.T(), rr, http.StatusInternalServerError, "Webhook processing failed")
	})
}
