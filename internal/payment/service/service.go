// Package service runs the payment flow: start a gateway checkout, record the
// pending row, and move it to a terminal status from polling, webhooks or the
// reconciliation sweep. All three share Refresh/ApplyGatewayStatus.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"museum/internal/payment/gateway"
	"museum/internal/payment/metrics"
	"museum/internal/payment/models"
	"museum/internal/platform/events"
	dErrors "museum/pkg/domain-errors"
	"museum/pkg/platform/audit"
	"museum/pkg/platform/sentinel"
	"museum/pkg/requestcontext"
)

// Sources of a status change.
const (
	SourcePoll      = "poll"
	SourceWebhook   = "webhook"
	SourceReconcile = "reconcile"
)

type Store interface {
	CreateDonation(ctx context.Context, d *models.Donation) error
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	InsertDonationIfAbsent(ctx context.Context, d *models.Donation) (bool, error)
	InsertTransactionIfAbsent(ctx context.Context, t *models.Transaction) (bool, error)
	UpdateStatus(ctx context.Context, kind models.Kind, reference string, status models.Status, now time.Time) (models.StatusChange, error)
	FindDonationByReference(ctx context.Context, reference string) (*models.Donation, error)
	FindTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error)
	ListDonations(ctx context.Context, f models.DonationFilter) ([]*models.Donation, int64, error)
	DonationStats(ctx context.Context) (*models.DonationStats, error)
}

type Gateway interface {
	Initialize(ctx context.Context, req gateway.InitializeRequest) (*models.InitResult, error)
	Verify(ctx context.Context, reference string) (*models.GatewayTransaction, error)
}

type Publisher interface {
	PublishPaymentStatus(ctx context.Context, event events.PaymentStatusChanged) error
}

type Auditor interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Service struct {
	store               Store
	gateway             Gateway
	publisher           Publisher
	auditor             Auditor
	webhookSecret       string
	donationCallbackURL string
	paymentCallbackURL  string
	logger              *slog.Logger
	metrics             *metrics.Metrics
	newReference        func(kind models.Kind) string
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publisher = p
		}
	}
}

func WithAuditor(a Auditor) Option {
	return func(s *Service) {
		s.auditor = a
	}
}

// WithCallbackURLs sets where the gateway sends the payer after checkout.
func WithCallbackURLs(donation, payment string) Option {
	return func(s *Service) {
		s.donationCallbackURL = donation
		s.paymentCallbackURL = payment
	}
}

// WithReferenceGenerator replaces the DON-/PAY- uuid references.
func WithReferenceGenerator(gen func(kind models.Kind) string) Option {
	return func(s *Service) {
		s.newReference = gen
	}
}

// New builds the service. webhookSecret is the gateway secret key used to
// check webhook signatures.
func New(store Store, gw Gateway, webhookSecret string, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("payment store is required")
	}
	if gw == nil {
		return nil, errors.New("payment gateway is required")
	}
	s := &Service{
		store:         store,
		gateway:       gw,
		publisher:     events.Nop{},
		webhookSecret: webhookSecret,
		logger:        slog.Default(),
		newReference:  newReference,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func newReference(kind models.Kind) string {
	if kind == models.KindDonation {
		return "DON-" + uuid.NewString()
	}
	return "PAY-" + uuid.NewString()
}

// CreateDonation starts a checkout and stores the pending donation. Nothing is
// written unless the gateway accepted the checkout.
func (s *Service) CreateDonation(ctx context.Context, req *models.CreateDonationRequest) (*models.DonationCheckout, error) {
	init, err := s.initialize(ctx, models.KindDonation, req.Email, float64(req.Amount), s.donationCallbackURL, req.Metadata())
	if err != nil {
		return nil, err
	}
	donation := req.Donation(init.Reference)
	if err := s.store.CreateDonation(ctx, donation); err != nil {
		s.logUnrecorded(ctx, models.KindDonation, init.Reference, err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record donation")
	}
	return &models.DonationCheckout{Donation: donation, Checkout: init}, nil
}

func (s *Service) InitializePayment(ctx context.Context, req *models.InitializePaymentRequest) (*models.PaymentCheckout, error) {
	init, err := s.initialize(ctx, models.KindPayment, req.Email, float64(req.Amount), s.paymentCallbackURL, req.Metadata())
	if err != nil {
		return nil, err
	}
	tx := req.Transaction(init.Reference)
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		s.logUnrecorded(ctx, models.KindPayment, init.Reference, err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record payment")
	}
	return &models.PaymentCheckout{Transaction: tx, Checkout: init}, nil
}

func (s *Service) initialize(ctx context.Context, kind models.Kind, email string, amount float64, callbackURL string, meta models.Metadata) (*models.InitResult, error) {
	start := time.Now()
	init, err := s.gateway.Initialize(ctx, gateway.InitializeRequest{
		Email:       email,
		Amount:      models.ToKobo(amount),
		Reference:   s.newReference(kind),
		CallbackURL: callbackURL,
		Metadata:    meta,
	})
	if s.metrics != nil {
		s.metrics.ObserveGateway("initialize", start)
	}
	if err != nil || init == nil || init.Reference == "" {
		s.recordInitialized(kind, "gateway_error")
		return nil, dErrors.Wrap(err, dErrors.CodeBadGateway, "Failed to initialize payment")
	}
	s.recordInitialized(kind, "success")
	return init, nil
}

// logUnrecorded flags the gap the reconciliation sweep closes: the gateway
// knows the reference but the row was not written.
func (s *Service) logUnrecorded(ctx context.Context, kind models.Kind, reference string, err error) {
	s.logger.ErrorContext(ctx, "gateway checkout created but record not stored",
		"kind", kind,
		"reference", reference,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
}

// Refresh asks the gateway for the current status of reference and applies
// it to the local record.
func (s *Service) Refresh(ctx context.Context, kind models.Kind, reference, source string) (*models.Verification, error) {
	if reference == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "Transaction reference is required")
	}
	start := time.Now()
	gtx, err := s.gateway.Verify(ctx, reference)
	if s.metrics != nil {
		s.metrics.ObserveGateway("verify", start)
	}
	if gateway.IsNotFound(err) {
		return nil, dErrors.New(dErrors.CodeNotFound, notFoundMessage(kind))
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadGateway, "Failed to verify transaction")
	}
	change, err := s.ApplyGatewayStatus(ctx, kind, reference, gtx.Status, source)
	if err != nil {
		return nil, err
	}
	return &models.Verification{Change: change, Gateway: gtx}, nil
}

// ApplyGatewayStatus maps gatewayStatus onto the record and publishes the
// transition when the status changed.
func (s *Service) ApplyGatewayStatus(ctx context.Context, kind models.Kind, reference, gatewayStatus, source string) (models.StatusChange, error) {
	status := models.StatusFromGateway(gatewayStatus)
	change, err := s.store.UpdateStatus(ctx, kind, reference, status, requestcontext.Now(ctx))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.StatusChange{}, dErrors.New(dErrors.CodeNotFound, notFoundMessage(kind))
		}
		return models.StatusChange{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update payment status")
	}
	if change.Changed() {
		s.publishChange(ctx, change, source)
	}
	return change, nil
}

func (s *Service) publishChange(ctx context.Context, change models.StatusChange, source string) {
	if s.metrics != nil {
		s.metrics.IncrementTransition(string(change.Kind), string(change.To), source)
	}
	s.logger.InfoContext(ctx, "payment status changed",
		"kind", change.Kind,
		"reference", change.Reference,
		"from", change.From,
		"to", change.To,
		"source", source,
	)
	err := s.publisher.PublishPaymentStatus(ctx, events.PaymentStatusChanged{
		Kind:       string(change.Kind),
		Reference:  change.Reference,
		From:       string(change.From),
		To:         string(change.To),
		Source:     source,
		AmountKobo: change.AmountKobo,
		OccurredAt: requestcontext.Now(ctx),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "payment status event not published",
			"reference", change.Reference,
			"error", err,
		)
	}
	if change.To == models.StatusCompleted {
		s.audit(ctx, audit.Event{Action: audit.ActionPaymentSettled, Subject: change.Reference, Reason: source})
	}
}

func (s *Service) audit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit event not recorded", "action", event.Action, "error", err)
	}
}

func (s *Service) VerifyDonation(ctx context.Context, reference string) (*models.Donation, *models.GatewayTransaction, error) {
	v, err := s.Refresh(ctx, models.KindDonation, reference, SourcePoll)
	if err != nil {
		return nil, nil, err
	}
	donation, err := s.GetDonationByReference(ctx, reference)
	if err != nil {
		return nil, nil, err
	}
	return donation, v.Gateway, nil
}

func (s *Service) VerifyPayment(ctx context.Context, reference string) (*models.Transaction, error) {
	if _, err := s.Refresh(ctx, models.KindPayment, reference, SourcePoll); err != nil {
		return nil, err
	}
	tx, err := s.store.FindTransactionByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, notFoundMessage(models.KindPayment))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load payment")
	}
	return tx, nil
}

// HandleWebhook authenticates a gateway event and applies charge.success to
// the matching record. The raw body is verified before it is parsed; an
// invalid signature never touches the database.
func (s *Service) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !gateway.VerifySignature(s.webhookSecret, body, signature) {
		s.recordWebhook("invalid_signature")
		s.audit(ctx, audit.Event{Action: audit.ActionWebhookRejected, Reason: "invalid_signature"})
		return dErrors.New(dErrors.CodeBadRequest, "Invalid signature")
	}
	var event models.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.recordWebhook("malformed")
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "Webhook processing failed")
	}
	if event.Event != models.EventChargeSuccess {
		s.recordWebhook("ignored")
		return nil
	}

	reference := event.Data.Reference
	kinds := []models.Kind{models.KindDonation, models.KindPayment}
	if k := event.Data.Metadata.TransactionType; k.IsValid() {
		kinds = []models.Kind{k}
	}
	for _, kind := range kinds {
		_, err := s.ApplyGatewayStatus(ctx, kind, reference, event.Data.Status, SourceWebhook)
		if err == nil {
			s.recordWebhook("applied")
			return nil
		}
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			s.recordWebhook("error")
			return err
		}
	}
	// Unknown reference: acknowledge so the gateway stops retrying. The sweep
	// recreates the record from the gateway's metadata.
	s.logger.WarnContext(ctx, "webhook for unknown reference",
		"reference", reference,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.recordWebhook("unknown_reference")
	return nil
}

// RestoreOrphan recreates the local record for a gateway transaction that has
// none, using the metadata sent at initialize time. It reports whether a row
// was written; transactions without our metadata are skipped.
func (s *Service) RestoreOrphan(ctx context.Context, gtx *models.GatewayTransaction) (bool, error) {
	if !gtx.Metadata.Present || gtx.Reference == "" || gtx.Amount <= 0 {
		return false, nil
	}
	meta := gtx.Metadata.Metadata
	status := models.StatusFromGateway(gtx.Status)
	amount := models.FromKobo(gtx.Amount)

	var (
		inserted bool
		err      error
	)
	switch meta.TransactionType {
	case models.KindDonation:
		req := models.CreateDonationRequest{
			FullName:         meta.FullName,
			Email:            gtx.Customer.Email,
			PhoneNumber:      meta.PhoneNumber,
			Country:          meta.Country,
			StateProvince:    meta.StateProvince,
			City:             meta.City,
			InMemoryOf:       meta.InMemoryOf,
			MemoryPersonName: meta.MemoryPersonName,
			IsAnonymous:      meta.IsAnonymous,
			Amount:           models.Amount(amount),
		}
		d := req.Donation(gtx.Reference)
		d.Status = status
		inserted, err = s.store.InsertDonationIfAbsent(ctx, d)
	case models.KindPayment:
		req := models.InitializePaymentRequest{
			Firstname:    meta.Firstname,
			Lastname:     meta.Lastname,
			Phone:        meta.Phone,
			Email:        gtx.Customer.Email,
			Address:      meta.Address,
			DeliveryNote: meta.DeliveryNote,
			State:        meta.State,
			Amount:       models.Amount(amount),
		}
		t := req.Transaction(gtx.Reference)
		t.Status = status
		inserted, err = s.store.InsertTransactionIfAbsent(ctx, t)
	default:
		return false, nil
	}
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to restore payment record")
	}
	if inserted {
		if s.metrics != nil {
			s.metrics.IncrementOrphanRestored(string(meta.TransactionType))
		}
		s.publishChange(ctx, models.StatusChange{
			Kind:       meta.TransactionType,
			Reference:  gtx.Reference,
			To:         status,
			AmountKobo: gtx.Amount,
		}, SourceReconcile)
	}
	return inserted, nil
}

func (s *Service) ListDonations(ctx context.Context, f models.DonationFilter) ([]*models.Donation, models.Pagination, error) {
	donations, total, err := s.store.ListDonations(ctx, f)
	if err != nil {
		return nil, models.Pagination{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list donations")
	}
	return donations, models.NewPagination(f.Page, f.Limit, total), nil
}

func (s *Service) GetDonationByReference(ctx context.Context, reference string) (*models.Donation, error) {
	if reference == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "Transaction reference is required")
	}
	d, err := s.store.FindDonationByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, notFoundMessage(models.KindDonation))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load donation")
	}
	return d, nil
}

func (s *Service) DonationStats(ctx context.Context) (*models.DonationStats, error) {
	st, err := s.store.DonationStats(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load donation stats")
	}
	return st, nil
}

func (s *Service) recordInitialized(kind models.Kind, result string) {
	if s.metrics != nil {
		s.metrics.IncrementInitialized(string(kind), result)
	}
}

func (s *Service) recordWebhook(result string) {
	if s.metrics != nil {
		s.metrics.IncrementWebhook(result)
	}
}

func notFoundMessage(kind models.Kind) string {
	if kind == models.KindDonation {
		return "Donation not found"
	}
	return "Transaction not found"
}
