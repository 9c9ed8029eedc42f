package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"museum/internal/payment/models"
	dErrors "museum/pkg/domain-errors"
	"museum/pkg/platform/httputil"
	"museum/pkg/requestcontext"
)

// SignatureHeader carries the gateway's HMAC of the webhook body.
const SignatureHeader = "x-paystack-signature"

// maxWebhookBytes caps webhook bodies; gateway events are a few KB.
const maxWebhookBytes = 1 << 20

// Service defines the payment operations used by the HTTP layer.
type Service interface {
	CreateDonation(ctx context.Context, req *models.CreateDonationRequest) (*models.DonationCheckout, error)
	InitializePayment(ctx context.Context, req *models.InitializePaymentRequest) (*models.PaymentCheckout, error)
	VerifyDonation(ctx context.Context, reference string) (*models.Donation, *models.GatewayTransaction, error)
	VerifyPayment(ctx context.Context, reference string) (*models.Transaction, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) error
	ListDonations(ctx context.Context, f models.DonationFilter) ([]*models.Donation, models.Pagination, error)
	GetDonationByReference(ctx context.Context, reference string) (*models.Donation, error)
	DonationStats(ctx context.Context) (*models.DonationStats, error)
}

// Handler serves /api/donations and /api/payment.
type Handler struct {
	payments Service
	logger   *slog.Logger
}

func New(payments Service, logger *slog.Logger) *Handler {
	return &Handler{payments: payments, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/api/donations", func(r chi.Router) {
		r.Post("/makeDonation", h.HandleCreateDonation)
		r.Get("/verify/{reference}", h.HandleVerifyDonation)
		r.Get("/reference/{reference}", h.HandleGetDonation)
		r.Get("/stats", h.HandleDonationStats)
		r.Get("/", h.HandleListDonations)
		r.Post("/webhook", h.HandleWebhook)
	})
	r.Route("/api/payment", func(r chi.Router) {
		r.Post("/initialize", h.HandleInitializePayment)
		r.Get("/verify/{reference}", h.HandleVerifyPayment)
		r.Post("/webhook", h.HandleWebhook)
	})
}

func (h *Handler) HandleCreateDonation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.CreateDonationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	out, err := h.payments.CreateDonation(ctx, req)
	if err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "create donation", err)
		return
	}
	h.logger.InfoContext(ctx, "donation initialized",
		"reference", out.Checkout.Reference,
		"request_id", requestID,
	)
	httputil.WriteJSON(w, http.StatusCreated, models.DataResponse{
		Success: true,
		Message: "Donation created successfully",
		Data: models.DonationCreatedData{
			Donation:         out.Donation,
			PaymentURL:       out.Checkout.AuthorizationURL,
			AuthorizationURL: out.Checkout.AuthorizationURL,
			AccessCode:       out.Checkout.AccessCode,
			Reference:        out.Checkout.Reference,
		},
	})
}

func (h *Handler) HandleInitializePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.InitializePaymentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	out, err := h.payments.InitializePayment(ctx, req)
	if err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "initialize payment", err)
		return
	}
	h.logger.InfoContext(ctx, "payment initialized",
		"reference", out.Checkout.Reference,
		"request_id", requestID,
	)
	httputil.WriteJSON(w, http.StatusCreated, models.DataResponse{
		Success: true,
		Data: models.PaymentInitializedData{
			Transaction:      out.Transaction,
			AuthorizationURL: out.Checkout.AuthorizationURL,
			AccessCode:       out.Checkout.AccessCode,
			Reference:        out.Checkout.Reference,
		},
	})
}

func (h *Handler) HandleVerifyDonation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	donation, raw, err := h.payments.VerifyDonation(ctx, chi.URLParam(r, "reference"))
	if err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "verify donation", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.DataResponse{
		Success: true,
		Message: "Donation verified successfully",
		Data:    models.DonationVerifiedData{Donation: donation, PaystackData: raw},
	})
}

// HandleVerifyPayment answers 200 only when the charge completed. Any other
// status is recorded and reported as a failed verification.
func (h *Handler) HandleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tx, err := h.payments.VerifyPayment(ctx, chi.URLParam(r, "reference"))
	if err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "verify payment", err)
		return
	}
	if tx.Status != models.StatusCompleted {
		httputil.WriteJSON(w, http.StatusBadRequest, models.FailureResponse{
			Success: false,
			Message: "Payment verification failed",
		})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.DataResponse{
		Success: true,
		Message: "Payment verified successfully",
		Data:    tx,
	})
}

func (h *Handler) HandleGetDonation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	donation, err := h.payments.GetDonationByReference(ctx, chi.URLParam(r, "reference"))
	if err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "get donation", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.DataResponse{Success: true, Data: donation})
}

func (h *Handler) HandleListDonations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter, err := models.ParseDonationFilter(r.URL.Query())
	if err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "list donations", err)
		return
	}
	donations, page, err := h.payments.ListDonations(ctx, filter)
	if err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "list donations", err)
		return
	}
	if donations == nil {
		donations = []*models.Donation{}
	}
	httputil.WriteJSON(w, http.StatusOK, models.DonationListResponse{
		Success:    true,
		Data:       donations,
		Pagination: page,
	})
}

func (h *Handler) HandleDonationStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.payments.DonationStats(ctx)
	if err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "donation stats", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.DataResponse{Success: true, Data: stats})
}

// HandleWebhook reads the raw body so the signature is checked over the exact
// bytes the gateway signed.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Webhook processing failed"))
		return
	}
	if err := h.payments.HandleWebhook(ctx, body, r.Header.Get(SignatureHeader)); err != nil {
		if httputil.StatusFor(codeOf(err)) >= http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "webhook processing failed",
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
			httputil.WriteJSON(w, http.StatusInternalServerError, models.FailureResponse{
				Success: false,
				Message: "Webhook processing failed",
			})
			return
		}
		httputil.WriteServiceError(w, h.logger, ctx, "webhook", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.AckResponse{Success: true})
}

func codeOf(err error) dErrors.Code {
	if de, ok := dErrors.As(err); ok {
		return de.Code
	}
	return dErrors.CodeInternal
}
